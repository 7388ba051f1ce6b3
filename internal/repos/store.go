package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"packcatalog/internal/domain"
)

// Store is the persistence gateway: every catalog operation is one statement
// against the relational store.
type Store struct {
	DB         *sqlx.DB
	Users      *UserRepo
	Products   *ProductRepo
	Categories *CategoryRepo
	Inquiries  *InquiryRepo
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		DB:         db,
		Users:      NewUserRepo(db),
		Products:   NewProductRepo(db),
		Categories: NewCategoryRepo(db),
		Inquiries:  NewInquiryRepo(db),
	}
}

func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.Users.ByID(ctx, id)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.Users.ByUsername(ctx, username)
}

func (s *Store) CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	return s.Users.Create(ctx, in)
}

func (s *Store) GetProducts(ctx context.Context, category, search string) ([]domain.Product, error) {
	return s.Products.List(ctx, category, search)
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.Products.Get(ctx, id)
}

func (s *Store) CreateProduct(ctx context.Context, in domain.InsertProduct) (*domain.Product, error) {
	return s.Products.Create(ctx, in)
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	return s.Products.Update(ctx, id, patch)
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	return s.Products.Delete(ctx, id)
}

func (s *Store) GetInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	return s.Inquiries.List(ctx)
}

func (s *Store) CreateInquiry(ctx context.Context, in domain.InsertInquiry) (*domain.Inquiry, error) {
	return s.Inquiries.Create(ctx, in)
}

func (s *Store) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Categories.List(ctx)
}

func (s *Store) CreateCategory(ctx context.Context, in domain.InsertCategory) (*domain.Category, error) {
	return s.Categories.Create(ctx, in)
}

func (s *Store) UpdateCategory(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error) {
	return s.Categories.Update(ctx, id, patch)
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	return s.Categories.Delete(ctx, id)
}

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }
