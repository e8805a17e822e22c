package routesV1Matching

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/drinkwithme-lk/server/internal/entity"
	"github.com/drinkwithme-lk/server/internal/middleware"
	"github.com/drinkwithme-lk/server/internal/usecase/matching"
	"github.com/drinkwithme-lk/server/pkg/http_util"
	"github.com/labstack/echo"
)

// CandidatesHandler returns the swipeable pool for the signed-in user. A
// user with no selections gets 409 with a redirect hint rather than an
// empty list, so the client can send them to the selection flow.
func CandidatesHandler(c echo.Context, matchingCase matching.IMatchingUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	candidates, err := matchingCase.PotentialMatches(c.Request().Context(), user.ID)

	if errors.Is(err, matching.ErrNoSelections) {
		return http_util.Encode(c, http.StatusConflict, map[string]string{
			"error":  "no restaurant selections",
			"action": "select_restaurants",
		})
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get candidates")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.CandidatesResponse]{
		Message: "Candidates fetched successfully",
		Data:    entity.CandidatesResponse{Candidates: candidates},
	})
}

func SwipeHandler(c echo.Context, matchingCase matching.IMatchingUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	reqBody, err := http_util.Decode[entity.SwipeRequest](c)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid request")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.BadRequest(c, problems)
	}

	swipedID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid user id")
	}

	outcome, matchID, err := matchingCase.Swipe(c.Request().Context(), user.ID, uint(swipedID), reqBody.Direction)

	if errors.Is(err, matching.ErrInvalidSwipe) {
		return http_util.Error(c, http.StatusBadRequest, "invalid swipe")
	}
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to swipe")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SwipeResponse]{
		Message: "Swipe outcome",
		Data: entity.SwipeResponse{
			Outcome:     outcome.String(),
			OutcomeEnum: outcome,
			MatchID:     matchID,
		},
	})
}

func ResetLeftSwipesHandler(c echo.Context, matchingCase matching.IMatchingUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	removed, err := matchingCase.ResetLeftSwipes(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to reset swipes")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[map[string]int64]{
		Message: "Left swipes reset",
		Data:    map[string]int64{"removed": removed},
	})
}

func MatchesHandler(c echo.Context, matchingCase matching.IMatchingUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	matches, err := matchingCase.Matches(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get matches")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.MatchesResponse]{
		Message: "Matches fetched successfully",
		Data:    entity.MatchesResponse{Matches: matches},
	})
}

func GetSelectionsHandler(c echo.Context, matchingCase matching.IMatchingUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	ids, err := matchingCase.Selections(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to get selections")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SelectionsResponse]{
		Message: "Selections fetched successfully",
		Data:    entity.SelectionsResponse{RestaurantIDs: ids},
	})
}

func ReplaceSelectionsHandler(c echo.Context, matchingCase matching.IMatchingUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	reqBody, err := http_util.Decode[entity.ReplaceSelectionsRequest](c)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid request")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.BadRequest(c, problems)
	}

	if err := matchingCase.ReplaceSelections(c.Request().Context(), user.ID, reqBody.RestaurantIDs); err != nil {
		return http_util.Error(c, http.StatusInternalServerError, "failed to update selections")
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Selections updated"})
}
