// Package http provides http transport for stored decisions
package http

import (
	stdhttp "net/http"

	"hyperflow/internal/modkit/httpkit"
	"hyperflow/internal/services/decisions/domain"
	svc "hyperflow/internal/services/decisions/service"
)

// Register mounts decision endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[statsInput](r, "/stats/slugs", h.statsBySlug)
	httpkit.PostJSON[statsInput](r, "/stats/tiers", h.statsByTier)
}

type handlers struct{ svc *svc.Service }

// statsInput carries the shared window and filters for aggregates
type statsInput struct {
	Window  domain.Window  `json:"window"`
	Filters domain.Filters `json:"filters"`
}

// decisionPage is the paged decision listing
type decisionPage struct {
	Decisions []domain.Row    `json:"decisions"`
	Next      domain.AfterKey `json:"next"`
}

// swagger:route POST /decisions/list Decisions decisionsList
// @Summary Page over stored routing decisions
// @Tags Decisions
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Window, filters and cursor"
// @Success 200 {object} decisionPage "ok"
// @Router /decisions/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	rows, next, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return decisionPage{Decisions: rows, Next: next}, nil
}

// swagger:route POST /decisions/stats/slugs Decisions decisionsStatsSlugs
// @Summary Decision counts and average score per project
// @Tags Decisions
// @Accept json
// @Produce json
// @Param payload body statsInput true "Window and filters"
// @Success 200 {array} domain.SlugStatsRow "ok"
// @Router /decisions/stats/slugs [post]
func (h *handlers) statsBySlug(r *stdhttp.Request, in statsInput) (any, error) {
	return h.svc.StatsBySlug(r.Context(), in.Window, in.Filters)
}

// swagger:route POST /decisions/stats/tiers Decisions decisionsStatsTiers
// @Summary Decision counts per confidence tier
// @Tags Decisions
// @Accept json
// @Produce json
// @Param payload body statsInput true "Window and filters"
// @Success 200 {array} domain.TierStatsRow "ok"
// @Router /decisions/stats/tiers [post]
func (h *handlers) statsByTier(r *stdhttp.Request, in statsInput) (any, error) {
	return h.svc.StatsByTier(r.Context(), in.Window, in.Filters)
}
