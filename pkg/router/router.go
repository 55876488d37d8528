package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/luckyspin-lab/backend/config"
	"github.com/luckyspin-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

// HandlerFunc is the signature of a domain endpoint. The request struct is
// bound from query parameters (GET, DELETE) or the JSON body (POST, PUT),
// with chi URL parameters overlaid in both cases.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. Returning an error aborts the
// request with that error; the returned context is passed downstream.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written. The final error and
// response are available through GetError and GetResponse.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux chi.Router

	cfg    config.Configs
	db     *gorm.DB
	logger logger.Logger

	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:    chi.NewRouter(),
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, so route groups can add their own Before/AddCloser
// without affecting siblings.
func (r *Router) Branch() *Router {
	branch := *r
	branch.befores = append([]MiddlewareFunc{}, r.befores...)
	branch.closers = append([]CloserFunc{}, r.closers...)
	return &branch
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	r.closers = append(r.closers, c)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

type endpointOptions struct {
	successStatus int
}

type EndpointOption func(*endpointOptions)

// WithSuccessStatus overrides the status written on a successful response,
// e.g. 201 for creations or 204 for deletions (no body is written for 204).
func WithSuccessStatus(status int) EndpointOption {
	return func(o *endpointOptions) {
		o.successStatus = status
	}
}
