package services

import (
	"context"
	"time"

	"packcatalog/internal/domain"
)

// Storage is the persistence gateway the services depend on. repos.Store
// implements it.
type Storage interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error)

	GetProducts(ctx context.Context, category, search string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, in domain.InsertProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	GetInquiries(ctx context.Context) ([]domain.Inquiry, error)
	CreateInquiry(ctx context.Context, in domain.InsertInquiry) (*domain.Inquiry, error)

	GetCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in domain.InsertCategory) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// Sessions is the server-side session table used by AuthService.
type Sessions interface {
	BindSession(ctx context.Context, sid string, userID int64, ttl time.Duration) error
	SessionUser(ctx context.Context, sid string) (*domain.User, error)
	UnbindSession(ctx context.Context, sid string) error
}
