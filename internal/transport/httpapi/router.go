package httpapi

import (
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// NewRouter wires the API routes. A nil metrics handler leaves /metrics unrouted.
func NewRouter(h *Handler, metrics http.Handler) *router.Router {
	r := router.New()

	r.GET("/healthz", h.Health)

	r.POST("/api/v1/{kind}", h.Create)
	r.GET("/api/v1/{kind}/{id}", h.Get)
	r.DELETE("/api/v1/{kind}/{id}", h.Delete)

	if metrics != nil {
		r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(metrics))
	}

	return r
}
