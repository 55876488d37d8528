package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luckyspin-lab/backend/pkg/errorx"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
)

type errorResponse struct {
	Code  int64  `json:"code"`
	Error string `json:"error"`
}

func httpStatusOf(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.TooManyRequests:
		return http.StatusTooManyRequests
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	resp := errorResponse{Code: int64(errx.Code), Error: errx.Message}
	if err := WriteJSON(w, httpStatusOf(errx.Code), resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the error response: %v", err)
	}
}

func writeResponse(ctx context.Context, w http.ResponseWriter, status int, resp any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	if err := WriteJSON(w, status, resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}

func WriteJSON(w http.ResponseWriter, status int, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
