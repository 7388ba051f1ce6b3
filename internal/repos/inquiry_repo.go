package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"packcatalog/internal/domain"
)

type InquiryRepo struct{ db *sqlx.DB }

func NewInquiryRepo(db *sqlx.DB) *InquiryRepo { return &InquiryRepo{db: db} }

const inquiryCols = `id, product_id, product_name, quantity, unit, message, status, created_at`

func (r *InquiryRepo) List(ctx context.Context) ([]domain.Inquiry, error) {
	out := []domain.Inquiry{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT `+inquiryCols+`
		FROM inquiries
		ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (r *InquiryRepo) Create(ctx context.Context, in domain.InsertInquiry) (*domain.Inquiry, error) {
	if in.Status == "" {
		in.Status = domain.InquiryStatusNew
	}
	var q domain.Inquiry
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		INSERT INTO inquiries(product_id, product_name, quantity, unit, message, status, created_at)
		VALUES(?,?,?,?,?,?,?)
		RETURNING `+inquiryCols),
		in.ProductID, in.ProductName, in.Quantity, in.Unit, in.Message, in.Status, now(),
	).StructScan(&q)
	if err != nil {
		return nil, translate(err)
	}
	return &q, nil
}
