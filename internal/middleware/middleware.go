package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// SetJWTSecret configures the shared HMAC secret used to verify admin
// tokens. Must be called once at startup, before the router is built.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// JWTAuth protects admin routes with a stateless bearer-token check.
// A missing credential is answered with 401; an invalid, tampered or
// expired one with 403. On success the admin id is attached to the
// request context under "adminID".
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Token de autenticação ausente")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, "Cabeçalho Authorization deve usar o esquema Bearer")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, "Token de autenticação ausente")
			return
		}

		claims, err := parseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			abortWithError(c, http.StatusForbidden, "Token inválido ou expirado")
			return
		}

		if err := setClaims(c, claims); err != nil {
			abortWithError(c, http.StatusForbidden, "Token inválido ou expirado")
			return
		}

		c.Next()
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
	c.Abort()
}

// parseAndValidateJWT parses the token and performs strict validation of
// the time-based claims
func parseAndValidateJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	now := time.Now()

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp == nil || exp.Before(now) {
		return nil, fmt.Errorf("token has expired")
	}

	// Reject tokens issued in the future
	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now) {
		return nil, fmt.Errorf("token issued in the future")
	}

	return claims, nil
}

// setClaims extracts the admin id and role from the claims and stores
// them in the Gin context
func setClaims(c *gin.Context, claims jwt.MapClaims) error {
	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return fmt.Errorf("token missing required 'uid' claim")
	}
	c.Set("adminID", uint(uid))

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return fmt.Errorf("token missing required 'role' claim")
	}
	c.Set("userRole", role)

	return nil
}
