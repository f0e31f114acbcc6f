package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// OSSService wraps the object-storage bucket used for event images.
// Uploads are re-encoded to WebP and stored under a fixed folder, the
// public URL goes into the event row.
type OSSService struct {
	client *oss.Client
	bucket *oss.Bucket
	host   string
	folder string
}

const (
	maxUploadSize  = int64(5 * 1024 * 1024)
	eventImageDir  = "church-events"
	defaultMaxEdge = 1600
	thumbEdge      = 320
	defaultQuality = float32(80)
)

var ErrUploadTooLarge = errors.New("image exceeds the 5MB upload limit")

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET_NAME"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, errors.New("OSS_ENDPOINT / OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET / OSS_BUCKET_NAME must be set")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	host := fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	return &OSSService{client: client, bucket: bucket, host: host, folder: eventImageDir}, nil
}

func (s *OSSService) PublicURL(key string) string {
	return s.host + "/" + key
}

// UploadImage re-encodes one multipart image (jpeg/png/webp) to WebP and
// streams it to the bucket. Returns the public URL.
func (s *OSSService) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", errors.New("no file")
	}
	if fh.Size > maxUploadSize {
		return "", ErrUploadTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(raw)) > maxUploadSize {
		return "", ErrUploadTooLarge
	}

	img, err := decodeImage(raw, fh.Filename)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img = downscaleIfNeeded(img, defaultMaxEdge, defaultMaxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: defaultQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}

	name := uuid.NewString()
	key := fmt.Sprintf("%s/%s.webp", s.folder, name)
	if err := s.bucket.PutObject(key, bytes.NewReader(buf.Bytes()), opts...); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}

	// small variant for list views; failure here is not fatal
	thumb := imaging.Fit(img, thumbEdge, thumbEdge, imaging.Lanczos)
	var tbuf bytes.Buffer
	if err := webp.Encode(&tbuf, thumb, &webp.Options{Lossless: false, Quality: defaultQuality}); err == nil {
		thumbKey := fmt.Sprintf("%s/%s_thumb.webp", s.folder, name)
		_ = s.bucket.PutObject(thumbKey, bytes.NewReader(tbuf.Bytes()), opts...)
	}

	return s.PublicURL(key), nil
}

// UploadImages uploads each file in order; the caller decides what to do
// with the resulting URLs (events keep the first as the primary image).
func (s *OSSService) UploadImages(ctx context.Context, fhs []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		u, err := s.UploadImage(ctx, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, errors.New("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

// keep aspect, CatmullRom for quality
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
