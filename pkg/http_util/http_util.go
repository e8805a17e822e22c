package http_util

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo"
)

type HTTPResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type HTTPErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func Encode[T any](c echo.Context, status int, v T) error {
	return c.JSON(status, v)
}

func Decode[T any](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		return v, fmt.Errorf("decode request: %w", err)
	}
	return v, nil
}

func DecodeBody[T any](body []byte, v T) (T, error) {
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func BadRequest(c echo.Context, problems map[string][]string) error {
	return c.JSON(http.StatusBadRequest, HTTPErrorResponse{
		Message: "Bad Request",
		Errors:  problems,
	})
}

func Error(c echo.Context, status int, detail string) error {
	return c.JSON(status, map[string]string{"error": detail})
}
