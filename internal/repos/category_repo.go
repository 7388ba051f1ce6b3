package repos

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"packcatalog/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryCols = `id, name, image, is_home_page`

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+categoryCols+` FROM categories`)
	return out, err
}

func (r *CategoryRepo) Create(ctx context.Context, in domain.InsertCategory) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		INSERT INTO categories(name, image, is_home_page)
		VALUES(?,?,?)
		RETURNING `+categoryCols), in.Name, in.Image, in.IsHomePage).StructScan(&c)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CategoryRepo) get(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.GetContext(ctx, &c, r.db.Rebind(`SELECT `+categoryCols+` FROM categories WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Update(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error) {
	if patch.Empty() {
		return r.get(ctx, id)
	}
	var sets []string
	var args []any
	if patch.Name != nil {
		sets, args = append(sets, "name = ?"), append(args, *patch.Name)
	}
	switch {
	case patch.ClearImage:
		sets = append(sets, "image = NULL")
	case patch.Image != nil:
		sets, args = append(sets, "image = ?"), append(args, *patch.Image)
	}
	if patch.IsHomePage != nil {
		sets, args = append(sets, "is_home_page = ?"), append(args, *patch.IsHomePage)
	}
	args = append(args, id)

	var c domain.Category
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		UPDATE categories SET `+strings.Join(sets, ", ")+`
		WHERE id = ?
		RETURNING `+categoryCols), args...).StructScan(&c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM categories WHERE id = ?`), id)
	return err
}
