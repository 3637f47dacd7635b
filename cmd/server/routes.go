package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/puic/quickxs-server/internal/db"
	"github.com/puic/quickxs-server/internal/http/api"
	authapi "github.com/puic/quickxs-server/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/puic/quickxs-server/internal/http/api/admin/endpoints"
	dashboardapi "github.com/puic/quickxs-server/internal/http/api/dashboard/endpoints"
	"github.com/puic/quickxs-server/internal/notify"
	"github.com/puic/quickxs-server/internal/snapshot"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, source *snapshot.Source, clock notify.Clock, onChange func()) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminapi.RoutineModule(store, onChange),
		adminapi.EventModule(store, onChange),
		adminapi.LinkModule(store),
		adminapi.SettingsModule(store, onChange),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/dashboard",
	},
		dashboardapi.DashboardModule(source, store, clock),
	)
}
