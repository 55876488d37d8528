package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luckyspin-lab/backend/config"
	"github.com/luckyspin-lab/backend/pkg/errorx"
	"github.com/luckyspin-lab/backend/pkg/logger"

	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type echoResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestRouter() *Router {
	return New(nil, config.Configs{}, logger.NewLogger(logger.SILENCE))
}

func TestRouter_bindsQueryAndURLParams(t *testing.T) {
	r := newTestRouter()
	GET(r, "/things/{id}", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{ID: req.ID, Name: req.Name}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/42?name=box", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"42","name":"box"}`, w.Body.String())
}

func TestRouter_bindsBodyAndURLParams(t *testing.T) {
	r := newTestRouter()
	PUT(r, "/things/{id}", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{ID: req.ID, Name: req.Name}, nil
	})

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPut, "/things/42", strings.NewReader(`{"name":"box"}`))
	r.Handler().ServeHTTP(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"42","name":"box"}`, w.Body.String())
}

func TestRouter_successStatus(t *testing.T) {
	r := newTestRouter()
	POST(r, "/things", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	}, WithSuccessStatus(http.StatusCreated))
	DELETE(r, "/things/{id}", func(ctx context.Context, req *echoRequest) (*struct{}, error) {
		return &struct{}{}, nil
	}, WithSuccessStatus(http.StatusNoContent))

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/things", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/things/42", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())
}

func TestRouter_errorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errorx.New(errorx.NotFound, "Page not found"), http.StatusNotFound},
		{"conflict", errorx.New(errorx.AlreadyExists, "Duplicated page"), http.StatusConflict},
		{"bad request", errorx.New(errorx.BadRequest, "Invalid configuration"), http.StatusBadRequest},
		{"forbidden", errorx.New(errorx.PermissionDenied, "Verification failed"), http.StatusForbidden},
		{"unexpected", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()
			GET(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
				return nil, tt.err
			})

			w := httptest.NewRecorder()
			r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.Equal(t, tt.wantStatus, w.Code)
			require.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestRouter_middlewareOrder(t *testing.T) {
	var calls []string

	r := newTestRouter()
	r.Before(func(ctx context.Context) (context.Context, error) {
		calls = append(calls, "before")
		return ctx, nil
	})
	r.AddCloser(func(ctx context.Context) {
		calls = append(calls, "closer")
		require.NoError(t, GetError(ctx))
		require.NotNil(t, GetResponse(ctx))
	})

	GET(r, "/things", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		calls = append(calls, "handler")
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things", nil))
	require.Equal(t, []string{"before", "handler", "closer"}, calls)
}

func TestRouter_branchIsolatesMiddleware(t *testing.T) {
	var branchCalls int

	r := newTestRouter()
	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		branchCalls++
		return ctx, nil
	})

	GET(r, "/plain", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})
	GET(branch, "/guarded", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	require.Zero(t, branchCalls)

	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.Equal(t, 1, branchCalls)
}

func TestRouter_abortingMiddleware(t *testing.T) {
	r := newTestRouter()
	r.Before(func(ctx context.Context) (context.Context, error) {
		return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	})

	handled := false
	GET(r, "/things", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		handled = true
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, handled)
}
