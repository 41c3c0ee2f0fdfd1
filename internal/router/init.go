package router

import (
	"github.com/tripora/tripora-api/internal/application"
	"github.com/tripora/tripora-api/internal/container"
	pginfra "github.com/tripora/tripora-api/internal/infrastructure/postgres"
	handlers "github.com/tripora/tripora-api/internal/interface/http"
	"github.com/tripora/tripora-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	places := pginfra.NewPlaceRepository(pool)
	packages := pginfra.NewPackageRepository(pool)
	reviews := pginfra.NewReviewRepository(pool)
	payments := pginfra.NewPaymentRepository(pool)

	authSvc := application.NewAuthService(
		users,
		container.GetTokens(),
		container.GetRabbitPub(),
		logger,
		cfg.MailSendEnabled,
		cfg.StoreTimeout,
	)
	catalogSvc := &application.CatalogService{
		Places:        places,
		Packages:      packages,
		ES:            container.GetES(),
		ESPlacesIndex: cfg.ESPlacesIndex,
		GCS:           container.GetGCS(),
		GCSBucket:     cfg.GCSBucket,
		Logger:        logger,
		StoreTimeout:  cfg.StoreTimeout,
	}
	reviewSvc := &application.ReviewService{Reviews: reviews, StoreTimeout: cfg.StoreTimeout}
	bookingSvc := &application.BookingService{
		Payments:     payments,
		Packages:     packages,
		Pub:          container.GetRabbitPub(),
		Logger:       logger,
		MailEnabled:  cfg.MailSendEnabled,
		StoreTimeout: cfg.StoreTimeout,
	}

	tokens := container.GetTokens()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), tokens))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, logger), tokens))
	r.Add(modules.NewCatalogModule(
		handlers.NewPlaceHandler(catalogSvc, logger),
		handlers.NewPackageHandler(catalogSvc, logger),
		tokens,
	))
	r.Add(modules.NewReviewModule(handlers.NewReviewHandler(reviewSvc, logger)))
	r.Add(modules.NewBookingModule(handlers.NewPaymentHandler(bookingSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
