package routesV1Chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/drinkwithme-lk/server/internal/entity"
	"github.com/drinkwithme-lk/server/internal/middleware"
	chatUseCase "github.com/drinkwithme-lk/server/internal/usecase/chat"
	"github.com/drinkwithme-lk/server/pkg/http_util"
	"github.com/labstack/echo"
)

func MessagesHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid match id")
	}

	messages, err := chatCase.Messages(c.Request().Context(), user.ID, uint(matchID))
	if err != nil {
		return chatError(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.MessagesResponse]{
		Message: "Messages fetched successfully",
		Data:    entity.MessagesResponse{Messages: messages},
	})
}

func SendMessageHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid match id")
	}

	reqBody, err := http_util.Decode[entity.SendMessageRequest](c)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid request")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.BadRequest(c, problems)
	}

	message, err := chatCase.SendMessage(c.Request().Context(), user.ID, uint(matchID), reqBody.Content)
	if err != nil {
		return chatError(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Message]{
		Message: "Message sent",
		Data:    message,
	})
}

func MarkSeenHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return http_util.Error(c, http.StatusBadRequest, "invalid match id")
	}

	if err := chatCase.MarkSeen(c.Request().Context(), user.ID, uint(matchID)); err != nil {
		return chatError(c, err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Messages marked as seen"})
}

func chatError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, chatUseCase.ErrMatchNotFound):
		return http_util.Error(c, http.StatusNotFound, "match not found")
	case errors.Is(err, chatUseCase.ErrNotMember):
		return http_util.Error(c, http.StatusForbidden, "not your match")
	default:
		return http_util.Error(c, http.StatusInternalServerError, "chat operation failed")
	}
}
