package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"pic-tools-backend/config"
	"pic-tools-backend/models"
)

func GetToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":  name,
		"sub":   userID,
		"admin": role.IsAdmin(),
		"role":  string(role),
		"exp":   time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := GetClaims(ctx)
	sub, ok := claims["sub"].(string)
	if !ok {
		return ""
	}
	return sub
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := GetClaims(ctx)
	name, ok := claims["name"].(string)
	if !ok {
		return ""
	}
	return name
}

func IsAdmin(ctx *fiber.Ctx) bool {
	claims := GetClaims(ctx)
	isAdmin, ok := claims["admin"].(bool)
	if !ok {
		return false
	}
	return isAdmin
}
