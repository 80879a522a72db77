package controllers

import (
	"net/http"

	"github.com/dcarvalho/shopline-backend/api/middleware"
	"github.com/dcarvalho/shopline-backend/api/responses"
	"github.com/dcarvalho/shopline-backend/api/validators"
	"github.com/dcarvalho/shopline-backend/internal/purchases"
	pkgerrors "github.com/dcarvalho/shopline-backend/pkg/errors"
	"github.com/dcarvalho/shopline-backend/pkg/logger"
)

// BuyProducts records a purchase against a named price cut for the
// authenticated user.
func BuyProducts(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "purchases service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		username := middleware.UsernameFromContext(r.Context())
		if username == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no token provided"))
			return
		}

		var body purchases.BuyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Buy(r.Context(), username, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// GetPurchases returns the authenticated user's purchase history with nested
// price cut, product, and asset details.
func GetPurchases(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "purchases service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		username := middleware.UsernameFromContext(r.Context())
		if username == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no token provided"))
			return
		}

		result, err := svc.History(r.Context(), username)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
