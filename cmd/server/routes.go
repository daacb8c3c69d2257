package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/masjid-suite/hub/internal/db"
	"github.com/masjid-suite/hub/internal/http/api"
	adminapi "github.com/masjid-suite/hub/internal/http/api/admin/endpoints"
	authapi "github.com/masjid-suite/hub/internal/http/api/admin/auth/endpoints"
	tvapi "github.com/masjid-suite/hub/internal/http/api/tv/endpoints"
	"github.com/masjid-suite/hub/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, storageSystem storage.Storage) {
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
			"If-None-Match",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"ETag",
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
	},
		authapi.AuthSessionModule(env.SecretKey, store),
		adminapi.MasjidModule(store),
		adminapi.ContentModule(store, storageSystem),
		adminapi.DisplayModule(store),
		adminapi.AssignmentModule(store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tv",
	},
		tvapi.TVModule(store),
	)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
