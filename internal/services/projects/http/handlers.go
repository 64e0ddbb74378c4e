// Package http provides http transport for the project registry
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"hyperflow/internal/modkit/httpkit"
	"hyperflow/internal/services/projects/domain"
	svc "hyperflow/internal/services/projects/service"
)

// Register mounts project endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{slug}", h.get)
	httpkit.PostJSON[domain.UpsertInput](r, "/", h.create)
	httpkit.PutJSON[domain.UpsertInput](r, "/{slug}", h.update)
	httpkit.Delete(r, "/{slug}", h.deactivate)
	httpkit.Post(r, "/reload", h.reload)
}

type handlers struct{ svc *svc.Service }

// swagger:route GET /projects Projects projectsList
// @Summary List registered projects
// @Tags Projects
// @Produce json
// @Param include_inactive query bool false "include deactivated projects"
// @Success 200 {array} domain.Project "ok"
// @Router /projects [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	return h.svc.List(r.Context(), includeInactive)
}

// swagger:route GET /projects/{slug} Projects projectsGet
// @Summary Fetch one project by slug
// @Tags Projects
// @Produce json
// @Param slug path string true "project slug"
// @Success 200 {object} domain.Project "ok"
// @Router /projects/{slug} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "slug"))
}

// swagger:route POST /projects Projects projectsCreate
// @Summary Register a new project
// @Tags Projects
// @Accept json
// @Produce json
// @Param payload body domain.UpsertInput true "Project"
// @Success 201 {object} domain.Project "created"
// @Router /projects [post]
func (h *handlers) create(r *stdhttp.Request, in domain.UpsertInput) (any, error) {
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(p), nil
}

// swagger:route PUT /projects/{slug} Projects projectsUpdate
// @Summary Replace a project definition
// @Tags Projects
// @Accept json
// @Produce json
// @Param slug path string true "project slug"
// @Param payload body domain.UpsertInput true "Project"
// @Success 200 {object} domain.Project "ok"
// @Router /projects/{slug} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpsertInput) (any, error) {
	return h.svc.Update(r.Context(), chi.URLParam(r, "slug"), in)
}

// swagger:route DELETE /projects/{slug} Projects projectsDeactivate
// @Summary Deactivate a project
// @Tags Projects
// @Produce json
// @Param slug path string true "project slug"
// @Success 204 "no content"
// @Router /projects/{slug} [delete]
func (h *handlers) deactivate(r *stdhttp.Request) (any, error) {
	if err := h.svc.Deactivate(r.Context(), chi.URLParam(r, "slug")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /projects/reload Projects projectsReload
// @Summary Rebuild the routing snapshot from storage
// @Tags Projects
// @Produce json
// @Success 200 {object} domain.ReloadReport "ok"
// @Router /projects/reload [post]
func (h *handlers) reload(r *stdhttp.Request) (any, error) {
	return h.svc.Reload(r.Context())
}
