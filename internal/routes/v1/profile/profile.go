package routesV1Profile

import (
	"net/http"

	"github.com/drinkwithme-lk/server/internal/entity"
	"github.com/drinkwithme-lk/server/internal/middleware"
	profileUseCase "github.com/drinkwithme-lk/server/internal/usecase/profile"
	"github.com/drinkwithme-lk/server/pkg/http_util"
	"github.com/labstack/echo"
)

func GetHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	profile, err := profileCase.Get(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get profile")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Profile]{
		Message: "Profile fetched successfully",
		Data:    profile,
	})
}

func UpdateHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	reqBody, err := http_util.Decode[entity.UpdateProfileRequest](c)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid request")
	}

	profile, err := profileCase.Update(c.Request().Context(), user.ID, reqBody)
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to update profile")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Profile]{
		Message: "Profile updated",
		Data:    profile,
	})
}
