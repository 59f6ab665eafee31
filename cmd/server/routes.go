package main

import (
	"context"
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/vakit/internal/config"
	"github.com/Nixie-Tech-LLC/vakit/internal/db"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	adminapi "github.com/Nixie-Tech-LLC/vakit/internal/http/api/admin/control/endpoints"
	authapi "github.com/Nixie-Tech-LLC/vakit/internal/http/api/admin/auth/endpoints"
	timesapi "github.com/Nixie-Tech-LLC/vakit/internal/http/api/times/endpoints"
	clientapi "github.com/Nixie-Tech-LLC/vakit/internal/http/api/tv/endpoints"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/vakit/internal/storage"
)

// PairingCodes is the redis backed code registry, seen from both sides.
type PairingCodes interface {
	Register(ctx context.Context, code, deviceID string) error
	Redeem(ctx context.Context, code string) (string, error)
}

// Services are the optional backends. Store is nil when no database is
// configured, and then only the public endpoints are mounted.
type Services struct {
	Store     db.Store
	Pairing   PairingCodes
	Publisher adminapi.ScreenPublisher
	Exports   storage.Storage
}

// NewRouter builds the engine with middleware and every module.
func NewRouter(cfg *config.Config, svc Services, tmpl *template.Template) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())
	RegisterRoutes(r, cfg, svc, tmpl)
	return r
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc Services, tmpl *template.Template) {
	r.SetHTMLTemplate(tmpl)
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{
			"Content-Length",
			middleware.RequestIDHeader,
		},
		AllowCredentials: false,
	}))

	r.GET("/metrics", middleware.MetricsHandler())

	api.MountGroup(r, api.GroupConfig{},
		timesapi.ServiceModule(),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		timesapi.TimesModule(),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tv",
	},
		clientapi.IntegrationsModule(),
	)

	if svc.Store == nil {
		return
	}

	// Static exports
	if local, ok := svc.Exports.(*storage.LocalStorage); ok {
		r.Static("/exports", local.Dir())
	}

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tv",
	},
		clientapi.PairingModule(svc.Store, svc.Pairing),
		clientapi.ScreenTimesModule(svc.Store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		authapi.AuthPublicModule(cfg.JWTSecret, authapi.Credentials{
			Email:        cfg.AdminEmail,
			PasswordHash: cfg.AdminPasswordHash,
		}),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
	},
		adminapi.ScreenModule(svc.Store, svc.Pairing, svc.Publisher, svc.Exports),
		// session endpoints that require auth
		authapi.AuthSessionModule(),
	)
}
