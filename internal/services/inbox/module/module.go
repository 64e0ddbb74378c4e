// Package module wires the inbox into the API using modkit
package module

import (
	"net/http"

	modkit "hyperflow/internal/modkit"
	"hyperflow/internal/modkit/httpkit"
	str "hyperflow/internal/platform/strings"
	inboxhttp "hyperflow/internal/services/inbox/http"
	inboxrepo "hyperflow/internal/services/inbox/repo"
	inboxsvc "hyperflow/internal/services/inbox/service"
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

	svc *inboxsvc.Service
}

// New constructs an inbox module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("inbox"),
		modkit.WithPrefix("/inbox"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	svc := inboxsvc.New(deps.PG, inboxrepo.NewPG(), inboxsvc.Config{
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
	m.ports = Ports{Writer: svc, Reader: svc, Marker: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		inboxhttp.Register(r, m.svc)
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
