package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"packcatalog/internal/domain"
)

// Error reports the first field of a payload that failed validation.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

var v = newValidator()

func newValidator() *validator.Validate {
	vv := validator.New(validator.WithRequiredStructEnabled())
	vv.RegisterTagNameFunc(func(f reflect.StructField) string {
		if n := f.Tag.Get("name"); n != "" {
			return n
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return vv
}

const maxQuantity = math.MaxInt32

// parseQuantity accepts a JSON number or a numeric string. Absent and null
// yield nil so the required rule reports them.
func parseQuantity(raw json.RawMessage) (*int64, error) {
	s := string(bytes.TrimSpace(raw))
	if s == "" || s == "null" {
		return nil, nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, &Error{Field: "quantity", Message: "quantity must be a whole number"}
	}
	// Clamp into int64 range; min and max report out-of-range values.
	if f > maxQuantity {
		f = maxQuantity + 1
	} else if f < 0 {
		f = 0
	}
	n := int64(f)
	return &n, nil
}

type productPayload struct {
	Name            *string            `json:"name" validate:"required,min=1"`
	Category        *string            `json:"category" validate:"required,min=1"`
	Description     *string            `json:"description" validate:"required"`
	Specs           map[string]*string `json:"specs" validate:"required,dive,required"`
	Images          []*string          `json:"images" validate:"required,dive,required"`
	WhatsappEnabled *bool              `json:"whatsappEnabled"`
}

type productPatchPayload struct {
	Name            *string            `json:"name" validate:"omitnil,min=1"`
	Category        *string            `json:"category" validate:"omitnil,min=1"`
	Description     *string            `json:"description"`
	Specs           map[string]*string `json:"specs" validate:"omitnil,dive,required"`
	Images          []*string          `json:"images" validate:"omitnil,dive,required"`
	WhatsappEnabled *bool              `json:"whatsappEnabled"`
}

type categoryPayload struct {
	Name       *string `json:"name" validate:"required,min=1"`
	Image      *string `json:"image"`
	IsHomePage *bool   `json:"isHomePage"`
}

type categoryPatchPayload struct {
	Name       *string `json:"name" validate:"omitnil,min=1"`
	Image      *string `json:"image"`
	IsHomePage *bool   `json:"isHomePage"`
}

type inquiryPayload struct {
	ProductID   *int64          `json:"productId"`
	ProductName *string         `json:"productName" validate:"required,min=1"`
	RawQuantity json.RawMessage `json:"quantity" validate:"-"`
	Quantity    *int64          `json:"-" name:"quantity" validate:"required,min=1,max=2147483647"`
	Unit        *string         `json:"unit" validate:"required,min=1"`
	Message     *string         `json:"message"`
	Status      *string         `json:"status" validate:"omitnil,min=1"`
}

func (p *inquiryPayload) coerce() error {
	q, err := parseQuantity(p.RawQuantity)
	if err != nil {
		return err
	}
	p.Quantity = q
	return nil
}

// coercer is implemented by payloads with fields converted after the JSON
// type pass and before rule validation.
type coercer interface {
	coerce() error
}

type loginPayload struct {
	Username *string `json:"username" validate:"required,min=1"`
	Password *string `json:"password" validate:"required,min=1"`
}

// Product validates a Product insert payload.
func Product(body []byte) (domain.InsertProduct, error) {
	var p productPayload
	if err := decode(body, &p); err != nil {
		return domain.InsertProduct{}, err
	}
	out := domain.InsertProduct{
		Name:            *p.Name,
		Category:        *p.Category,
		Description:     *p.Description,
		Specs:           specs(p.Specs),
		Images:          images(p.Images),
		WhatsappEnabled: true,
	}
	if p.WhatsappEnabled != nil {
		out.WhatsappEnabled = *p.WhatsappEnabled
	}
	return out, nil
}

// ProductPatch validates a partial Product payload. Absent fields stay nil.
func ProductPatch(body []byte) (domain.ProductPatch, error) {
	var p productPatchPayload
	if err := decode(body, &p); err != nil {
		return domain.ProductPatch{}, err
	}
	return domain.ProductPatch{
		Name:            p.Name,
		Category:        p.Category,
		Description:     p.Description,
		Specs:           specs(p.Specs),
		Images:          images(p.Images),
		WhatsappEnabled: p.WhatsappEnabled,
	}, nil
}

// specs and images drop the pointers the validator used to reject null
// entries. nil stays nil.
func specs(in map[string]*string) domain.Specs {
	if in == nil {
		return nil
	}
	out := make(domain.Specs, len(in))
	for k, v := range in {
		out[k] = *v
	}
	return out
}

func images(in []*string) domain.Images {
	if in == nil {
		return nil
	}
	out := make(domain.Images, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}

func Category(body []byte) (domain.InsertCategory, error) {
	var p categoryPayload
	if err := decode(body, &p); err != nil {
		return domain.InsertCategory{}, err
	}
	out := domain.InsertCategory{Name: *p.Name, Image: p.Image}
	if p.IsHomePage != nil {
		out.IsHomePage = *p.IsHomePage
	}
	return out, nil
}

// CategoryPatch validates a partial Category payload. An explicit
// "image": null clears the image.
func CategoryPatch(body []byte) (domain.CategoryPatch, error) {
	var p categoryPatchPayload
	if err := decode(body, &p); err != nil {
		return domain.CategoryPatch{}, err
	}
	out := domain.CategoryPatch{Name: p.Name, Image: p.Image, IsHomePage: p.IsHomePage}
	if p.Image == nil {
		var raw map[string]json.RawMessage
		if json.Unmarshal(body, &raw) == nil {
			if img, ok := raw["image"]; ok && string(bytes.TrimSpace(img)) == "null" {
				out.ClearImage = true
			}
		}
	}
	return out, nil
}

func Inquiry(body []byte) (domain.InsertInquiry, error) {
	var p inquiryPayload
	if err := decode(body, &p); err != nil {
		return domain.InsertInquiry{}, err
	}
	out := domain.InsertInquiry{
		ProductID:   p.ProductID,
		ProductName: *p.ProductName,
		Quantity:    int(*p.Quantity),
		Unit:        *p.Unit,
		Message:     p.Message,
		Status:      domain.InquiryStatusNew,
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	return out, nil
}

// Login validates the credential payload shape only.
func Login(body []byte) (username, password string, err error) {
	var p loginPayload
	if err := decode(body, &p); err != nil {
		return "", "", err
	}
	return *p.Username, *p.Password, nil
}

// ID parses a path identifier. Only positive integers are valid.
func ID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func decode(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &Error{Message: "request body must be a JSON object"}
	}
	// Order of reported errors: JSON type mismatches, then coerced fields,
	// then validation rules in field order.
	if err := json.Unmarshal(body, dst); err != nil {
		return decodeError(err)
	}
	if c, ok := dst.(coercer); ok {
		if err := c.coerce(); err != nil {
			return err
		}
	}
	if err := v.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fieldError(ve[0])
		}
		return err
	}
	return nil
}

func decodeError(err error) error {
	var ve *Error
	if errors.As(err, &ve) {
		return ve
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		if te.Field == "" {
			return &Error{Message: "request body must be a JSON object"}
		}
		return &Error{Field: te.Field, Message: fmt.Sprintf("%s must be %s", te.Field, kindName(te.Type))}
	}
	return &Error{Message: "malformed JSON body"}
}

func kindName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "a valid " + t.Kind().String()
	}
}

func fieldError(fe validator.FieldError) *Error {
	field, _, inside := strings.Cut(fe.Field(), "[")
	e := &Error{Field: field}
	switch {
	case inside:
		e.Message = field + " must contain only strings"
	case fe.Tag() == "required":
		e.Message = field + " is required"
	case field == "quantity" && fe.Tag() == "min":
		e.Message = "Quantity must be at least 1"
	case field == "quantity" && fe.Tag() == "max":
		e.Message = fmt.Sprintf("Quantity must be at most %d", maxQuantity)
	case fe.Tag() == "min":
		e.Message = field + " must not be empty"
	default:
		e.Message = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
	return e
}
