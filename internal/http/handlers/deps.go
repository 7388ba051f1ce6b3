package handlers

import (
	"packcatalog/internal/cache"
	"packcatalog/internal/config"
	"packcatalog/internal/repos"
	"packcatalog/internal/services"
)

type Deps struct {
	Auth       *services.AuthService
	AuthH      *AuthHandler
	Products   *ProductHandler
	Categories *CategoryHandler
	Inquiries  *InquiryHandler
	Health     *HealthHandler
}

// NewDeps wires services and handlers over one store. A nil cache disables
// product listing caching.
func NewDeps(store *repos.Store, cfg config.Config, c cache.Cache) *Deps {
	authSvc := services.NewAuthService(store, store.Users, cfg.Auth.SessionTTL)
	catalogSvc := services.NewCatalogService(store, c)
	inquirySvc := services.NewInquiryService(store, cfg.WhatsApp.Number)

	return &Deps{
		Auth:       authSvc,
		AuthH:      &AuthHandler{Auth: authSvc, TTL: cfg.Auth.SessionTTL, Secure: cfg.Auth.CookieSecure},
		Products:   &ProductHandler{Catalog: catalogSvc},
		Categories: &CategoryHandler{Catalog: catalogSvc},
		Inquiries:  &InquiryHandler{Inquiries: inquirySvc},
		Health:     &HealthHandler{DB: store},
	}
}
