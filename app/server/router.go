package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/silkline/catalog/app/api"
	"github.com/silkline/catalog/app/catalog"
	"github.com/silkline/catalog/app/taxonomy"
	"github.com/silkline/catalog/models"
)

// NewRouter wires every catalog endpoint onto a chi router backed by db.
func NewRouter(db *gorm.DB, log zerolog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(api.RequestLogger(log))
	router.Use(middleware.Recoverer)

	catalogHandler := catalog.NewCatalogHandler(models.NewProductsRepository(db), log)
	taxonomyHandler := taxonomy.NewTaxonomyHandler(models.NewTaxonomyRepository(db), log)

	// /categories, /sizes, /colors, ... one route per dimension
	for _, kind := range models.Kinds {
		router.Get("/"+kind.Table(), taxonomyHandler.HandleGetAll(kind))
	}

	router.Get("/all", catalogHandler.HandleGet)
	router.Get("/products/{id}", catalogHandler.HandleGetProduct)
	router.Get("/health", healthHandler(db, log))

	return router
}

func healthHandler(db *gorm.DB, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			log.Error().Err(err).Msg("health check failed")
			api.ErrorResponse(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		api.OKResponse(w, map[string]string{"status": "ok"})
	}
}
