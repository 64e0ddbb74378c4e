// Package api provides the HTTP API for the application
package api

import (
	"context"

	"hyperflow/internal/platform/config"
	"hyperflow/internal/platform/logger"
	phttp "hyperflow/internal/platform/net/http"
	"hyperflow/internal/platform/store"

	"hyperflow/internal/modkit"
	"hyperflow/internal/modkit/httpkit"
	"hyperflow/internal/modkit/module"
	"hyperflow/internal/modkit/swaggerkit"

	metamod "hyperflow/internal/services/api/meta/module"
	decisionsmod "hyperflow/internal/services/decisions/module"
	inboxmod "hyperflow/internal/services/inbox/module"
	projectsmod "hyperflow/internal/services/projects/module"
	routedom "hyperflow/internal/services/route/domain"
	routemod "hyperflow/internal/services/route/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// data-owning modules first; the route module consumes their ports
	projects := projectsmod.New(deps)
	inbox := inboxmod.New(deps)
	decisions := decisionsmod.New(deps)

	// compile the routing snapshot at boot; an empty registry is fine,
	// a dead database is not worth crashing the API over (reload endpoint recovers)
	snapshots := module.MustPortsOf[projectsmod.Ports](projects).Snapshots
	if _, err := snapshots.Reload(context.Background()); err != nil {
		logger.Get().Warn().Err(err).Msg("initial snapshot reload failed")
	}

	router := routemod.New(
		deps,
		routemod.Options{},
		modkit.WithPorts(routedom.Ports{
			Snapshots: snapshots,
			Inbox:     module.MustPortsOf[inboxmod.Ports](inbox).Reader,
			Marker:    module.MustPortsOf[inboxmod.Ports](inbox).Marker,
			Decisions: module.MustPortsOf[decisionsmod.Ports](decisions).Writer,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		projects,
		inbox,
		decisions,
		router,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
