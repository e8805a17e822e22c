package routesV1Restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/drinkwithme-lk/server/internal/entity"
	"github.com/drinkwithme-lk/server/internal/middleware"
	restaurantUseCase "github.com/drinkwithme-lk/server/internal/usecase/restaurant"
	"github.com/drinkwithme-lk/server/pkg/http_util"
	"github.com/labstack/echo"
)

func ListHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	ctx := c.Request().Context()

	// Query params narrow the catalog; without any, the full approved list
	// ordered by rating comes back.
	filters := entity.RestaurantFilters{}
	hasFilters := false

	if v := c.QueryParam("is_byob"); v != "" {
		isBYOB := v == "true"
		filters.IsBYOB = &isBYOB
		hasFilters = true
	}
	if v := c.QueryParam("min_rating"); v != "" {
		minRating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return http_util.Error(c, http.StatusBadRequest, "invalid min_rating")
		}
		filters.MinRating = minRating
		hasFilters = true
	}
	if v := c.QueryParam("city"); v != "" {
		filters.City = v
		hasFilters = true
	}

	var (
		restaurants []entity.Restaurant
		err         error
	)
	if q := c.QueryParam("q"); q != "" {
		restaurants, err = restaurantCase.Search(ctx, q)
	} else if hasFilters {
		restaurants, err = restaurantCase.Filter(ctx, filters)
	} else {
		restaurants, err = restaurantCase.ListApproved(ctx)
	}

	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get restaurants")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.RestaurantsResponse]{
		Message: "Restaurants fetched successfully",
		Data:    entity.RestaurantsResponse{Restaurants: restaurants},
	})
}

func GetHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid restaurant id")
	}

	restaurant, err := restaurantCase.Get(c.Request().Context(), uint(id))
	if errors.Is(err, restaurantUseCase.ErrNotFound) {
		return http_util.Error(c, http.StatusNotFound, "restaurant not found")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get restaurant")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Restaurant]{
		Message: "Restaurant fetched successfully",
		Data:    restaurant,
	})
}

func ReviewsHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid restaurant id")
	}

	reviews, err := restaurantCase.Reviews(c.Request().Context(), uint(id))
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get reviews")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.ReviewsResponse]{
		Message: "Reviews fetched successfully",
		Data:    entity.ReviewsResponse{Reviews: reviews},
	})
}

func AddReviewHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid restaurant id")
	}

	reqBody, err := http_util.Decode[entity.CreateReviewRequest](c)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid request")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.BadRequest(c, problems)
	}

	review, err := restaurantCase.AddReview(c.Request().Context(), user.ID, uint(id), reqBody)
	if errors.Is(err, restaurantUseCase.ErrNotFound) {
		return http_util.Error(c, http.StatusNotFound, "restaurant not found")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to add review")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Review]{
		Message: "Review created",
		Data:    review,
	})
}

// Owner endpoints.

func MyRestaurantHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	restaurant, err := restaurantCase.MyRestaurant(c.Request().Context(), user.ID)
	if errors.Is(err, restaurantUseCase.ErrNotFound) {
		return http_util.Error(c, http.StatusNotFound, "no restaurant listed")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get restaurant")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Restaurant]{
		Message: "Restaurant fetched successfully",
		Data:    restaurant,
	})
}

func SubmitHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	reqBody, err := http_util.Decode[entity.CreateRestaurantRequest](c)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid request")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.BadRequest(c, problems)
	}

	restaurant, err := restaurantCase.SubmitRestaurant(c.Request().Context(), user.ID, reqBody)
	if errors.Is(err, restaurantUseCase.ErrHasListed) {
		return http_util.Error(c, http.StatusConflict, "restaurant already listed")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to submit restaurant")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Restaurant]{
		Message: "Restaurant submitted for review",
		Data:    restaurant,
	})
}

func UpdateHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid restaurant id")
	}

	reqBody, err := http_util.Decode[entity.UpdateRestaurantRequest](c)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid request")
	}

	restaurant, err := restaurantCase.UpdateRestaurant(c.Request().Context(), user.ID, uint(id), reqBody)
	if errors.Is(err, restaurantUseCase.ErrNotFound) {
		return http_util.Error(c, http.StatusNotFound, "restaurant not found")
	}
	if errors.Is(err, restaurantUseCase.ErrNotOwner) {
		return http_util.Error(c, http.StatusForbidden, "not your restaurant")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to update restaurant")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Restaurant]{
		Message: "Restaurant updated",
		Data:    restaurant,
	})
}

func ReservationsHandler(c echo.Context, restaurantCase restaurantUseCase.IRestaurantUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid restaurant id")
	}

	reservations, err := restaurantCase.Reservations(c.Request().Context(), user.ID, uint(id))
	if errors.Is(err, restaurantUseCase.ErrNotFound) {
		return http_util.Error(c, http.StatusNotFound, "restaurant not found")
	}
	if errors.Is(err, restaurantUseCase.ErrNotOwner) {
		return http_util.Error(c, http.StatusForbidden, "not your restaurant")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get reservations")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.ReservationsResponse]{
		Message: "Reservations fetched successfully",
		Data:    entity.ReservationsResponse{Reservations: reservations},
	})
}
