package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"hyperflow/internal/modkit"
	"hyperflow/internal/modkit/module"
	"hyperflow/internal/modkit/repokit"
	"hyperflow/internal/platform/config"
	"hyperflow/internal/platform/logger"
	"hyperflow/internal/platform/store"

	decisionsmod "hyperflow/internal/services/decisions/module"
	inboxmod "hyperflow/internal/services/inbox/module"
	projectsmod "hyperflow/internal/services/projects/module"
	routedom "hyperflow/internal/services/route/domain"
	routemod "hyperflow/internal/services/route/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "hyperflow",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", false),
			URL:     chCfg.MayString("DBURL", ""),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast if a configured seam cannot be reached
	repokit.MustGuard(context.Background(), st)

	var (
		workers = flag.Int("workers", 2, "concurrency (>=1)")
		page    = flag.Int("page", 500, "page size (rows)")
		dryRun  = flag.Bool("dry-run", false, "compute but do not write decisions")
	)
	flag.Parse()

	// Pass CLI flags into CORE_ROUTE_* so the module can read its own config
	mustSetEnv("CORE_ROUTE_WORKERS", strconv.Itoa(*workers))
	mustSetEnv("CORE_ROUTE_PAGE_SIZE", strconv.Itoa(*page))
	mustSetEnv("CORE_ROUTE_DRY_RUN", map[bool]string{true: "1", false: "0"}[*dryRun])

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	// Build dependency modules first
	projects := projectsmod.New(deps)
	inbox := inboxmod.New(deps)
	decisions := decisionsmod.New(deps)

	// Compile the routing snapshot before the sweep
	snapshots := module.MustPortsOf[projectsmod.Ports](projects).Snapshots
	if _, err := snapshots.Reload(context.Background()); err != nil {
		l.Fatal().Err(err).Msg("snapshot reload failed")
	}

	// Build the route module with ports injected from the deps modules
	rm := routemod.New(
		deps,
		routemod.Options{
			Workers:  *workers,
			PageSize: *page,
			DryRun:   *dryRun,
		},
		modkit.WithPorts(routedom.Ports{
			Snapshots: snapshots,
			Inbox:     module.MustPortsOf[inboxmod.Ports](inbox).Reader,
			Marker:    module.MustPortsOf[inboxmod.Ports](inbox).Marker,
			Decisions: module.MustPortsOf[decisionsmod.Ports](decisions).Writer,
		}),
	)

	// Register ports
	module.Register(projects.Name(), projects.Ports())
	module.Register(inbox.Name(), inbox.Ports())
	module.Register(decisions.Name(), decisions.Ports())
	module.Register(rm.Name(), rm.Ports())

	// Kick the runner
	ports := rm.Ports().(routemod.Ports)
	report, err := ports.Runner.RunPending(context.Background())
	if err != nil {
		l.Fatal().Err(err).Msg("routing sweep failed")
	}
	l.Info().
		Int("scanned", report.Scanned).
		Int("routed", report.Routed).
		Int("pages", report.Pages).
		Msg("routing sweep done")
}
