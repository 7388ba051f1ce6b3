package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Specs is an open-ended set of product attributes (material, capacity, ...).
type Specs map[string]string

// Images is an ordered list of image URLs.
type Images []string

type Product struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Category        string    `db:"category" json:"category"`
	Description     string    `db:"description" json:"description"`
	Specs           Specs     `db:"specs" json:"specs"`
	Images          Images    `db:"images" json:"images"`
	WhatsappEnabled bool      `db:"whatsapp_enabled" json:"whatsappEnabled"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type InsertProduct struct {
	Name            string
	Category        string
	Description     string
	Specs           Specs
	Images          Images
	WhatsappEnabled bool
}

// ProductPatch holds the fields of a partial update; nil means unchanged.
type ProductPatch struct {
	Name            *string
	Category        *string
	Description     *string
	Specs           Specs
	Images          Images
	WhatsappEnabled *bool
}

func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Description == nil &&
		p.Specs == nil && p.Images == nil && p.WhatsappEnabled == nil
}

type Category struct {
	ID         int64   `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	Image      *string `db:"image" json:"image"`
	IsHomePage bool    `db:"is_home_page" json:"isHomePage"`
}

type InsertCategory struct {
	Name       string
	Image      *string
	IsHomePage bool
}

type CategoryPatch struct {
	Name       *string
	Image      *string
	ClearImage bool // image explicitly set to null
	IsHomePage *bool
}

func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Image == nil && !p.ClearImage && p.IsHomePage == nil
}

const InquiryStatusNew = "new"

type Inquiry struct {
	ID          int64     `db:"id" json:"id"`
	ProductID   *int64    `db:"product_id" json:"productId"`
	ProductName string    `db:"product_name" json:"productName"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Unit        string    `db:"unit" json:"unit"`
	Message     *string   `db:"message" json:"message"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type InsertInquiry struct {
	ProductID   *int64
	ProductName string
	Quantity    int
	Unit        string
	Message     *string
	Status      string
}

func (s Specs) Value() (driver.Value, error) {
	if s == nil {
		s = Specs{}
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *Specs) Scan(src any) error {
	out := Specs{}
	if err := scanJSON(src, &out); err != nil {
		return fmt.Errorf("specs: %w", err)
	}
	*s = out
	return nil
}

func (im Images) Value() (driver.Value, error) {
	if im == nil {
		im = Images{}
	}
	b, err := json.Marshal(im)
	return string(b), err
}

func (im *Images) Scan(src any) error {
	out := Images{}
	if err := scanJSON(src, &out); err != nil {
		return fmt.Errorf("images: %w", err)
	}
	*im = out
	return nil
}

func scanJSON(src any, dst any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("unsupported type %T", src)
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}
