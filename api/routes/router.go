package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcarvalho/shopline-backend/api/controllers"
	"github.com/dcarvalho/shopline-backend/api/middleware"
	"github.com/dcarvalho/shopline-backend/internal/auth"
	"github.com/dcarvalho/shopline-backend/internal/catalog"
	"github.com/dcarvalho/shopline-backend/internal/purchases"
	"github.com/dcarvalho/shopline-backend/pkg/config"
	"github.com/dcarvalho/shopline-backend/pkg/db"
	"github.com/dcarvalho/shopline-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	authService auth.Service,
	registerService auth.RegisterService,
	catalogService catalog.Service,
	purchasesService purchases.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Post("/register", controllers.AuthRegister(registerService, logg))
	r.Post("/login", controllers.AuthLogin(authService, logg))
	r.Get("/getProducts", controllers.GetProducts(catalogService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Post("/buyProducts", controllers.BuyProducts(purchasesService, logg))
		r.Get("/getPurchases", controllers.GetPurchases(purchasesService, logg))
	})

	return r
}
