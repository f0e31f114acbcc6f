package configs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	ClerkPEMPublicKey  string
	ClerkWebhookSecret string
	OSSBucketName      string
	OSSEndpoint        string
	SelfURL            string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		} else {
			log.Println("loaded .env file")
		}
	} else {
		log.Println("running on Railway, using system ENV")
	}

	ClerkPEMPublicKey = GetEnv("CLERK_PEM_PUBLIC_KEY")
	ClerkWebhookSecret = GetEnv("CLERK_WEBHOOK_SECRET")
	OSSBucketName = GetEnv("OSS_BUCKET_NAME")
	OSSEndpoint = GetEnv("OSS_ENDPOINT")
	SelfURL = GetEnv("SELF_URL", "http://localhost:3000")

	if ClerkPEMPublicKey == "" {
		log.Println("[WARN] CLERK_PEM_PUBLIC_KEY not set, bearer auth will reject all tokens")
	}
	if ClerkWebhookSecret == "" {
		log.Println("[WARN] CLERK_WEBHOOK_SECRET not set, webhook verification will fail")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
