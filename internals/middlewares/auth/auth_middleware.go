package auth

import (
	"crypto/rsa"
	"log"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"churchms_backend/internals/configs"
)

var (
	pubKeyOnce sync.Once
	pubKey     *rsa.PublicKey
	pubKeyErr  error
)

// Clerk issues RS256 session tokens; deployments paste the instance PEM
// public key into CLERK_PEM_PUBLIC_KEY so verification needs no JWKS fetch.
func clerkPublicKey() (*rsa.PublicKey, error) {
	pubKeyOnce.Do(func() {
		pubKey, pubKeyErr = jwt.ParseRSAPublicKeyFromPEM([]byte(configs.ClerkPEMPublicKey))
	})
	return pubKey, pubKeyErr
}

// ClerkAuthMiddleware verifies the bearer token and stores the subject id
// and role in locals for downstream handlers.
func ClerkAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		key, err := clerkPublicKey()
		if err != nil {
			log.Printf("[ERROR] bad CLERK_PEM_PUBLIC_KEY: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "auth is not configured")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return key, nil
		}); err != nil {
			log.Printf("[ERROR] token parse: %v", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing subject")
		}
		c.Locals("user_id", sub)
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", fiber.ErrUnauthorized
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}
