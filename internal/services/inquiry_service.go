package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"packcatalog/internal/domain"
	"packcatalog/internal/metrics"
)

// ErrUnknownProduct is returned when an inquiry names a product id that does
// not exist.
var ErrUnknownProduct = errors.New("productId does not reference an existing product")

type InquiryService struct {
	Store          Storage
	WhatsAppNumber string
}

func NewInquiryService(store Storage, whatsappNumber string) *InquiryService {
	return &InquiryService{Store: store, WhatsAppNumber: whatsappNumber}
}

// Create stores the inquiry and returns the WhatsApp handoff link for it.
// The link is empty when no number is configured. The inquiry is committed
// before the link is built; the link itself is never persisted.
func (s *InquiryService) Create(ctx context.Context, in domain.InsertInquiry) (*domain.Inquiry, string, error) {
	q, err := s.Store.CreateInquiry(ctx, in)
	if errors.Is(err, domain.ErrConflict) && in.ProductID != nil {
		return nil, "", ErrUnknownProduct
	}
	if err != nil {
		return nil, "", err
	}
	link := WhatsAppLink(s.WhatsAppNumber, q)
	if link != "" {
		metrics.InquiriesCreatedTotal.WithLabelValues("yes").Inc()
	} else {
		metrics.InquiriesCreatedTotal.WithLabelValues("no").Inc()
	}
	return q, link, nil
}

func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	return s.Store.GetInquiries(ctx)
}

// WhatsAppLink builds a wa.me click-to-chat URL prefilled with the inquiry.
func WhatsAppLink(number string, q *domain.Inquiry) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	if number == "" || q == nil {
		return ""
	}
	msg := ""
	if q.Message != nil {
		msg = *q.Message
	}
	text := fmt.Sprintf("Hi, I am interested in *%s*.\nQuantity: %d %s\nMessage: %s",
		q.ProductName, q.Quantity, q.Unit, msg)
	return "https://wa.me/" + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
