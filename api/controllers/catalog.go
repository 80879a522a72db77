package controllers

import (
	"net/http"

	"github.com/dcarvalho/shopline-backend/api/responses"
	"github.com/dcarvalho/shopline-backend/internal/catalog"
	pkgerrors "github.com/dcarvalho/shopline-backend/pkg/errors"
	"github.com/dcarvalho/shopline-backend/pkg/logger"
)

// GetProducts returns the full catalog with nested assets and price cuts.
func GetProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}
