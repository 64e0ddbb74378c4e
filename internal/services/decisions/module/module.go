// Package module wires stored decisions into the API using modkit
package module

import (
	"net/http"

	modkit "hyperflow/internal/modkit"
	"hyperflow/internal/modkit/httpkit"
	str "hyperflow/internal/platform/strings"
	decisionshttp "hyperflow/internal/services/decisions/http"
	decisionsrepo "hyperflow/internal/services/decisions/repo"
	decisionssvc "hyperflow/internal/services/decisions/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *decisionssvc.Service
}

// New constructs a decisions module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("decisions"),
		modkit.WithPrefix("/decisions"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	svc := decisionssvc.New(deps.PG, decisionsrepo.NewPG(), deps.CH, decisionssvc.Config{
		HardLimit: cfg.HardLimit,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Writer: svc, Query: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		decisionshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
