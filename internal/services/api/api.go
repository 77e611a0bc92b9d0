// Package api assembles the http surface: /api/v1 modules, swagger, pprof and the form
package api

import (
	"bulletpoints/internal/core/normalize"
	"bulletpoints/internal/platform/config"
	"bulletpoints/internal/platform/logger"
	phttp "bulletpoints/internal/platform/net/http"

	"bulletpoints/internal/modkit"
	"bulletpoints/internal/modkit/httpkit"
	"bulletpoints/internal/modkit/module"
	"bulletpoints/internal/modkit/swaggerkit"

	bulletsmod "bulletpoints/internal/services/api/bullets/module"
	metamod "bulletpoints/internal/services/api/meta/module"
	uimod "bulletpoints/internal/services/ui/module"
)

// Options are the API options
type Options struct {
	Logger         *logger.Logger
	Normalizer     *normalize.Normalizer
	EnableSwagger  bool
	EnableProfiler bool
	EnableUI       bool
	CORSOrigins    []string
}

// OptionsFromConfig reads the CORE_API_ toggles from cfg, which must already carry that prefix
func OptionsFromConfig(cfg config.Conf) Options {
	return Options{
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		EnableUI:       cfg.MayBool("UI", true),
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}
}

// Mount mounts the api, the docs, the profiler and the form onto r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Norm: opt.Normalizer}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if deps.Norm == nil {
		deps.Norm = normalize.New()
	}

	mods := []module.Module{
		metamod.New(deps),
		bulletsmod.New(deps),
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.CORSOrigins...), func(api httpkit.Router) {
		for _, m := range mods {
			// siblings find each other's ports by module name
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			deps.Log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	if opt.EnableUI {
		uimod.FromRegistry(deps, modkit.WithMiddlewares(httpkit.PageStack()...)).MountRoutes(r)
	}
}
