// Package module wires the route orchestrator using modkit
package module

import (
	"net/http"

	modkit "hyperflow/internal/modkit"
	"hyperflow/internal/modkit/httpkit"
	str "hyperflow/internal/platform/strings"
	"hyperflow/internal/services/route/domain"
	routehttp "hyperflow/internal/services/route/http"
	routesvc "hyperflow/internal/services/route/service"
)

// Ports exposed by the route module
type Ports struct {
	Decider domain.DeciderPort
	Runner  domain.RunnerPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *routesvc.Service
}

// New constructs a route module. Dependency ports are injected via
// modkit.WithPorts(route/domain.Ports); overrides beat env config
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("route"),
		modkit.WithPrefix("/route"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("route module: expected WithPorts(route/domain.Ports)")
	}
	if ports.Snapshots == nil || ports.Inbox == nil || ports.Marker == nil || ports.Decisions == nil {
		panic("route module: Ports missing a required dependency")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.PageSize != 0 {
		cfg.PageSize = overrides.PageSize
	}
	// bool override wins (defaults false if caller didn't set)
	cfg.DryRun = cfg.DryRun || overrides.DryRun

	svc := routesvc.New(ports, routesvc.Config{
		Workers:  cfg.Workers,
		PageSize: cfg.PageSize,
		DryRun:   cfg.DryRun,
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
	m.ports = Ports{Decider: svc, Runner: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		routehttp.Register(r, m.svc)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
