package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"pic-tools-backend/config"
	apimodels "pic-tools-backend/models/api"
	authutils "pic-tools-backend/lib/utils/auth-utils"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !authutils.IsAdmin(ctx) {
			return ctx.Status(fiber.StatusForbidden).
				JSON(apimodels.NewError("требуются права администратора"))
		}
		return ctx.Next()
	}
}
