package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type AdminClaims struct {
	Role      string
	Subject   string
	ExpiresAt int64
}

// catalog writes are gated on an HS256 bearer token with role=admin
func parseAdminJWT(jwtStr string, secret string) (*AdminClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	out := &AdminClaims{}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
	}

	if time.Now().UTC().Unix() > out.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return out, nil
}

func (m ApiHandler) adminAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	jwtStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if jwtStr == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}

	claims, err := parseAdminJWT(jwtStr, m.AdminJwtSecret)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	if claims.Role != "admin" {
		returnErrorJsonCode(fmt.Errorf("admin role required"), c, 403)
		return
	}

	c.Next()
}
