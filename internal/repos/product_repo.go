package repos

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"packcatalog/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, category, description, specs, images, whatsapp_enabled, created_at`

// List returns products newest first. A non-empty category filters by exact
// match. search is accepted but not applied.
func (r *ProductRepo) List(ctx context.Context, category, search string) ([]domain.Product, error) {
	_ = search
	q := `SELECT ` + productCols + ` FROM products`
	args := []any{}
	if category != "" {
		q += ` WHERE category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(q), args...)
	return out, err
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, r.db.Rebind(`SELECT `+productCols+` FROM products WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, in domain.InsertProduct) (*domain.Product, error) {
	if in.Specs == nil {
		in.Specs = domain.Specs{}
	}
	if in.Images == nil {
		in.Images = domain.Images{}
	}
	var p domain.Product
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		INSERT INTO products(name, category, description, specs, images, whatsapp_enabled, created_at)
		VALUES(?,?,?,?,?,?,?)
		RETURNING `+productCols),
		in.Name, in.Category, in.Description, in.Specs, in.Images, in.WhatsappEnabled, now(),
	).StructScan(&p)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Update applies the non-nil fields of patch in one statement. created_at is
// never touched.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.Empty() {
		return r.Get(ctx, id)
	}
	var sets []string
	var args []any
	if patch.Name != nil {
		sets, args = append(sets, "name = ?"), append(args, *patch.Name)
	}
	if patch.Category != nil {
		sets, args = append(sets, "category = ?"), append(args, *patch.Category)
	}
	if patch.Description != nil {
		sets, args = append(sets, "description = ?"), append(args, *patch.Description)
	}
	if patch.Specs != nil {
		sets, args = append(sets, "specs = ?"), append(args, patch.Specs)
	}
	if patch.Images != nil {
		sets, args = append(sets, "images = ?"), append(args, patch.Images)
	}
	if patch.WhatsappEnabled != nil {
		sets, args = append(sets, "whatsapp_enabled = ?"), append(args, *patch.WhatsappEnabled)
	}
	args = append(args, id)

	var p domain.Product
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		UPDATE products SET `+strings.Join(sets, ", ")+`
		WHERE id = ?
		RETURNING `+productCols), args...).StructScan(&p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Delete is idempotent. Inquiries keep their row; product_id is nulled.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM products WHERE id = ?`), id)
	return err
}
