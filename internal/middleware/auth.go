package middleware

import (
	"net/http"
	"strings"

	"github.com/drinkwithme-lk/server/internal/entity"
	userRepo "github.com/drinkwithme-lk/server/internal/repository/user"
	"github.com/drinkwithme-lk/server/pkg/jwt"
	"github.com/labstack/echo"
)

// CurrentUser returns the user resolved by JWTMiddleware.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get("user").(*entity.User)
	return user, ok && user != nil
}

// JWTMiddleware validates the bearer token and stashes the resolved user on
// the echo context under "user".
func JWTMiddleware(userRepo userRepo.IUserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "missing token"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid token format"})
			}

			claims, err := jwt.ValidateToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid token"})
			}

			user, err := userRepo.GetUserByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid token"})
			}

			c.Set("claims", claims)
			c.Set("user", user)

			return next(c)
		}
	}
}
