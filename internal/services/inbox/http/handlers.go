// Package http provides http transport for the inbox
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"hyperflow/internal/modkit/httpkit"
	"hyperflow/internal/services/inbox/domain"
	svc "hyperflow/internal/services/inbox/service"
)

// Register mounts inbox endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SubmitInput](r, "/", h.submit)
	httpkit.PostJSON[domain.ListInput](r, "/pending", h.pending)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc *svc.Service }

// swagger:route POST /inbox Inbox inboxSubmit
// @Summary Submit a document for routing
// @Tags Inbox
// @Accept json
// @Produce json
// @Param payload body domain.SubmitInput true "Document"
// @Success 201 {object} domain.Document "created"
// @Router /inbox [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	d, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(d), nil
}

// pendingPage is the paged pending listing
type pendingPage struct {
	Documents []domain.Document `json:"documents"`
	Next      domain.AfterKey   `json:"next"`
}

// swagger:route POST /inbox/pending Inbox inboxPending
// @Summary Page over unrouted documents
// @Tags Inbox
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Cursor"
// @Success 200 {object} pendingPage "ok"
// @Router /inbox/pending [post]
func (h *handlers) pending(r *stdhttp.Request, in domain.ListInput) (any, error) {
	rows, next, err := h.svc.ListPending(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return pendingPage{Documents: rows, Next: next}, nil
}

// swagger:route GET /inbox/{id} Inbox inboxGet
// @Summary Fetch one document by id
// @Tags Inbox
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} domain.Document "ok"
// @Router /inbox/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}
