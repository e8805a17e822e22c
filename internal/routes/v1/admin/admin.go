package routesV1Admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/drinkwithme-lk/server/internal/entity"
	"github.com/drinkwithme-lk/server/internal/middleware"
	restaurantUseCase "github.com/drinkwithme-lk/server/internal/usecase/restaurant"
	"github.com/drinkwithme-lk/server/pkg/http_util"
	"github.com/labstack/echo"
	"gorm.io/gorm"
)

func ListByStatusHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	status := entity.RestaurantStatus(c.QueryParam("status"))
	switch status {
	case entity.RestaurantPending, entity.RestaurantApproved, entity.RestaurantRejected:
	case "":
		status = entity.RestaurantPending
	default:
		return http_util.Error(c, http.StatusBadRequest, "invalid status")
	}

	restaurants, err := restaurantCase.ListByStatus(c.Request().Context(), user.ID, status)
	if errors.Is(err, restaurantUseCase.ErrNotAdmin) {
		return http_util.Error(c, http.StatusForbidden, "admin role required")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get restaurants")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.RestaurantsResponse]{
		Message: "Restaurants fetched successfully",
		Data:    entity.RestaurantsResponse{Restaurants: restaurants},
	})
}

func ApproveHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	return review(c, restaurantCase, true)
}

func RejectHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	return review(c, restaurantCase, false)
}

func review(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase, approve bool) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid restaurant id")
	}

	ctx := c.Request().Context()
	if approve {
		err = restaurantCase.Approve(ctx, user.ID, uint(id))
	} else {
		err = restaurantCase.Reject(ctx, user.ID, uint(id))
	}

	if errors.Is(err, restaurantUseCase.ErrNotAdmin) {
		return http_util.Error(c, http.StatusForbidden, "admin role required")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http_util.Error(c, http.StatusNotFound, "restaurant not found")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to review restaurant")
	}

	message := "Restaurant rejected"
	if approve {
		message = "Restaurant approved"
	}
	return http_util.Encode(c, http.StatusOK, map[string]string{"message": message})
}
