package services

import (
	"context"

	"packcatalog/internal/cache"
	"packcatalog/internal/domain"
	applog "packcatalog/internal/log"
	"packcatalog/internal/metrics"
)

const productListPrefix = "products:"

type CatalogService struct {
	Store Storage
	Cache cache.Cache
}

func NewCatalogService(store Storage, c cache.Cache) *CatalogService {
	if c == nil {
		c = cache.Nop{}
	}
	return &CatalogService{Store: store, Cache: c}
}

// ListProducts returns products newest first, optionally filtered by exact
// category. search is passed through to the store, which ignores it.
func (s *CatalogService) ListProducts(ctx context.Context, category, search string) ([]domain.Product, error) {
	key := productListPrefix + category
	var cached []domain.Product
	hit, err := s.Cache.Get(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		l := applog.Get()
		l.Warn().Err(err).Str("key", key).Msg("product cache read failed")
	case hit:
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.Store.GetProducts(ctx, category, search)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, key, products); err != nil {
		l := applog.Get()
		l.Warn().Err(err).Str("key", key).Msg("product cache write failed")
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.Store.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in domain.InsertProduct) (*domain.Product, error) {
	p, err := s.Store.CreateProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	p, err := s.Store.UpdateProduct(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.Store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Store.GetCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, in domain.InsertCategory) (*domain.Category, error) {
	return s.Store.CreateCategory(ctx, in)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error) {
	return s.Store.UpdateCategory(ctx, id, patch)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.Store.DeleteCategory(ctx, id)
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.Cache.Invalidate(ctx, productListPrefix); err != nil {
		l := applog.Get()
		l.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
