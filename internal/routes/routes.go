package routes

import (
	"moviegrid/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, catalogHandler *handlers.CatalogHandler, assetHandler *handlers.AssetHandler) {
	// Server-rendered grid page
	app.Get("/", catalogHandler.GetGrid)

	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - grid and refresh
	movies := v1.Group("/movies")
	{
		movies.Get("/", catalogHandler.GetMovies)
		movies.Post("/refresh", catalogHandler.RefreshMovies)
	}

	// Fetch log routes - diagnostics
	fetchLogs := v1.Group("/fetch-logs")
	{
		fetchLogs.Get("/", catalogHandler.GetFetchLogs)
		fetchLogs.Get("/last", catalogHandler.GetLastFetchLog)
	}

	// Asset routes - placeholder poster management
	if assetHandler != nil {
		assets := v1.Group("/assets")
		{
			assets.Get("/placeholder/presign", assetHandler.PresignPlaceholder)
		}
	}
}
