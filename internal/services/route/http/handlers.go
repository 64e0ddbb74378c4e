// Package http provides http transport for routing operations
package http

import (
	stdhttp "net/http"

	"hyperflow/internal/modkit/httpkit"
	"hyperflow/internal/services/route/domain"
	svc "hyperflow/internal/services/route/service"
)

// Register mounts routing endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.DecideInput](r, "/decide", h.decide)
	httpkit.PostJSON[domain.PreviewInput](r, "/preview", h.preview)
	httpkit.Post(r, "/run", h.run)
}

type handlers struct{ svc *svc.Service }

// swagger:route POST /route/decide Route routeDecide
// @Summary Route one inbox document and persist the decision
// @Tags Route
// @Accept json
// @Produce json
// @Param payload body domain.DecideInput true "Document reference"
// @Success 200 {object} domain.Outcome "ok"
// @Router /route/decide [post]
func (h *handlers) decide(r *stdhttp.Request, in domain.DecideInput) (any, error) {
	return h.svc.Decide(r.Context(), in)
}

// swagger:route POST /route/preview Route routePreview
// @Summary Route ad-hoc text without persisting anything
// @Tags Route
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Text"
// @Success 200 {object} domain.Outcome "ok"
// @Router /route/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// swagger:route POST /route/run Route routeRun
// @Summary Route every pending inbox document
// @Tags Route
// @Produce json
// @Success 200 {object} domain.RunReport "ok"
// @Router /route/run [post]
func (h *handlers) run(r *stdhttp.Request) (any, error) {
	return h.svc.RunPending(r.Context())
}
