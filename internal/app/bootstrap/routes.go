// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	accountdetailsfeature "github.com/dalemusser/propertyhub/internal/app/features/accountdetails"
	accountsfeature "github.com/dalemusser/propertyhub/internal/app/features/accounts"
	addressesfeature "github.com/dalemusser/propertyhub/internal/app/features/addresses"
	blogsfeature "github.com/dalemusser/propertyhub/internal/app/features/blogs"
	checkoutfeature "github.com/dalemusser/propertyhub/internal/app/features/checkout"
	companyfeature "github.com/dalemusser/propertyhub/internal/app/features/company"
	contactfeature "github.com/dalemusser/propertyhub/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/propertyhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/propertyhub/internal/app/features/health"
	homefeature "github.com/dalemusser/propertyhub/internal/app/features/home"
	listingsfeature "github.com/dalemusser/propertyhub/internal/app/features/listings"
	neighboursfeature "github.com/dalemusser/propertyhub/internal/app/features/neighbours"
	projectsfeature "github.com/dalemusser/propertyhub/internal/app/features/projects"
	subscribefeature "github.com/dalemusser/propertyhub/internal/app/features/subscribe"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root router. Every feature mounts its own
// paths at the root so the public URLs stay flat.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger)
	db := deps.MongoDatabase
	maxMB := int64(appCfg.MaxUploadMB)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins(appCfg.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Uploads, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded files
	r.Handle("/uploads/*", fileserver.Handler("/uploads", appCfg.UploadDir))

	homefeature.MountRoutes(r, homefeature.NewHandler(logger))

	// Accounts and credentials
	accountsfeature.MountRoutes(r, accountsfeature.NewHandler(db, deps.Credentials, deps.Uploads, deps.Limiter, maxMB, errLog, logger))
	accountdetailsfeature.MountRoutes(r, accountdetailsfeature.NewHandler(db, deps.Uploads, maxMB, errLog, logger))

	// Listings and reviews
	listingsfeature.MountRoutes(r, listingsfeature.NewHandler(db, deps.Uploads, maxMB, errLog, logger))

	// Blogs and comments
	blogsfeature.MountRoutes(r, blogsfeature.NewHandler(db, deps.Uploads, maxMB, errLog, logger))

	// Site content
	companyfeature.MountRoutes(r, companyfeature.NewHandler(db, deps.Uploads, maxMB, errLog, logger))
	projectsfeature.MountRoutes(r, projectsfeature.NewHandler(db, deps.Uploads, maxMB, errLog, logger))
	neighboursfeature.MountRoutes(r, neighboursfeature.NewHandler(db, deps.Uploads, maxMB, errLog, logger))

	// Customer submissions
	contactfeature.MountRoutes(r, contactfeature.NewHandler(db, errLog, logger))
	subscribefeature.MountRoutes(r, subscribefeature.NewHandler(db, logger))
	addressesfeature.MountRoutes(r, addressesfeature.NewHandler(db, errLog, logger))
	checkoutfeature.MountRoutes(r, checkoutfeature.NewHandler(db, errLog, logger))

	return r, nil
}
