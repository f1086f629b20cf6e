package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const contextUserKey = "fitledger_user_id"

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func (handler *Handler) generateToken(userID uint, now time.Time) (string, error) {
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return handler.secretKey, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, fmt.Errorf("invalid token claims")
	}
	return claims.UserID, nil
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	userID, err := handler.parseToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	c.Locals(contextUserKey, userID)
	return c.Next()
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(contextUserKey).(uint)
	return userID
}
