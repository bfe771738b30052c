package requests

import (
	"log/slog"
	"net/http"
	"time"

	"leadhub-backend/internal/cache"
	"leadhub-backend/internal/db"
	"leadhub-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

// Deps carries the shared wiring every request-type handler needs.
type Deps struct {
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
	Location *time.Location
	StatsTTL time.Duration
	Notifier Notifier
}

// Mount registers all ten request-type resources under the given router.
func Mount(r chi.Router, cols *db.Collections, deps Deps, public, admin func(http.Handler) http.Handler) {
	newWebsiteHandler(cols.WebsiteRequests, deps).Routes(r, public, admin)
	newMobileAppHandler(cols.MobileAppRequests, deps).Routes(r, public, admin)
	newCloudHostingHandler(cols.CloudHostingRequests, deps).Routes(r, public, admin)
	newCRMHandler(cols.CRMRequests, deps).Routes(r, public, admin)
	newHRMSHandler(cols.HRMSRequests, deps).Routes(r, public, admin)
	newBrandingHandler(cols.BrandingRequests, deps).Routes(r, public, admin)
	newSaaSHandler(cols.SaaSRequests, deps).Routes(r, public, admin)
	newEcommerceHandler(cols.EcommerceRequests, deps).Routes(r, public, admin)
	newLMSHandler(cols.LMSRequests, deps).Routes(r, public, admin)
	newAIContentHandler(cols.AIContentRequests, deps).Routes(r, public, admin)
}
