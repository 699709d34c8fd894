package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/strokedash/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapRenderError maps a failed page render to an HTTP status and error code.
// Any asset failure makes the page unrenderable, so every case is a 500.
func MapRenderError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusInternalServerError, "ASSET_NOT_FOUND", message
	case errors.Is(err, domain.ErrAssetNotDecodable):
		return http.StatusInternalServerError, "ASSET_NOT_DECODABLE", message
	case errors.Is(err, domain.ErrAssetUnreadable):
		return http.StatusInternalServerError, "ASSET_UNREADABLE", message
	default:
		return mapUnknown(err)
	}
}

// MapAssetError maps a direct asset fetch failure to an HTTP status and error code.
func MapAssetError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	case errors.Is(err, domain.ErrUnknownAsset):
		return http.StatusNotFound, "ASSET_NOT_FOUND", message
	case errors.Is(err, domain.ErrInvalidAssetPath):
		return http.StatusNotFound, "ASSET_NOT_FOUND", message
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, "ASSET_NOT_FOUND", message
	case errors.Is(err, domain.ErrAssetNotDecodable):
		return http.StatusInternalServerError, "ASSET_NOT_DECODABLE", message
	case errors.Is(err, domain.ErrAssetUnreadable):
		return http.StatusInternalServerError, "ASSET_UNREADABLE", message
	default:
		return mapUnknown(err)
	}
}

func mapUnknown(err error) (int, string, string) {
	slog.Error("unmapped error returned to client",
		"error", err,
		"error_type", fmt.Sprintf("%T", err),
	)
	return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
}
