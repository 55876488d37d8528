package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/luckyspin-lab/backend/pkg/errorx"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response], opts ...EndpointOption) {
	r.mux.Get(pattern, wrapHandler(r, handler, opts))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response], opts ...EndpointOption) {
	r.mux.Post(pattern, wrapHandler(r, handler, opts))
}

func PUT[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response], opts ...EndpointOption) {
	r.mux.Put(pattern, wrapHandler(r, handler, opts))
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response], opts ...EndpointOption) {
	r.mux.Delete(pattern, wrapHandler(r, handler, opts))
}

func wrapHandler[Request, Response any](
	router *Router,
	handler HandlerFunc[Request, Response],
	opts []EndpointOption,
) http.HandlerFunc {
	options := endpointOptions{successStatus: http.StatusOK}
	for _, opt := range opts {
		opt(&options)
	}

	return func(w http.ResponseWriter, httpReq *http.Request) {
		ctx := httpReq.Context()
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithHTTPRequest(ctx, httpReq)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		resp, err := func() (*Response, error) {
			for _, before := range router.befores {
				newCtx, err := before(ctx)
				if err != nil {
					return nil, err
				}
				ctx = newCtx
			}

			req := new(Request)
			if err := bindRequest(httpReq, req); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				return nil, errorx.New(errorx.BadRequest, "Cannot parse the request")
			}

			return handler(ctx, req)
		}()

		if err != nil {
			writeError(ctx, w, err)
			ctx = withError(ctx, err)
		} else if resp != nil {
			writeResponse(ctx, w, options.successStatus, resp)
			ctx = withResponse(ctx, resp)
		}

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

// bindRequest fills the request struct from the query string (GET, DELETE) or
// the JSON body (POST, PUT), then overlays chi URL parameters. Both overlays
// match struct fields by their json tag.
func bindRequest(httpReq *http.Request, req any) error {
	switch httpReq.Method {
	case http.MethodGet, http.MethodDelete:
		values := map[string]string{}
		for key := range httpReq.URL.Query() {
			values[key] = httpReq.URL.Query().Get(key)
		}

		if err := decodeWeakly(values, req); err != nil {
			return err
		}

	default:
		body, err := io.ReadAll(httpReq.Body)
		if err != nil {
			return err
		}

		if len(body) > 0 {
			if err := json.Unmarshal(body, req); err != nil {
				return err
			}
		}
	}

	if routeCtx := chi.RouteContext(httpReq.Context()); routeCtx != nil {
		params := map[string]string{}
		for i, key := range routeCtx.URLParams.Keys {
			if key == "*" {
				continue
			}
			params[key] = routeCtx.URLParams.Values[i]
		}

		if len(params) > 0 {
			if err := decodeWeakly(params, req); err != nil {
				return err
			}
		}
	}

	return nil
}

func decodeWeakly(values map[string]string, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}

type (
	errorKey    struct{}
	responseKey struct{}
)

func withError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

// GetError returns the error the endpoint finished with, for use in closers.
func GetError(ctx context.Context) error {
	err, ok := ctx.Value(errorKey{}).(error)
	if !ok {
		return nil
	}

	return err
}

func withResponse(ctx context.Context, resp any) context.Context {
	return context.WithValue(ctx, responseKey{}, resp)
}

func GetResponse(ctx context.Context) any {
	return ctx.Value(responseKey{})
}
