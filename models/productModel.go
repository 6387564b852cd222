package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const DefaultProductImageURL = "https://placehold.co/100"

var ErrInvalidProduct = errors.New("invalid product")

var validate = validator.New()

type Product struct {
	ID              ID              `json:"id,omitempty"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
}

// NewProduct is the add-product form. The backend receives it verbatim.
type NewProduct struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock" validate:"gte=0"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url" validate:"omitempty,url"`
}

// Validate enforces the form constraints before anything is sent.
func (p *NewProduct) Validate() error {
	if p.Price.IsNegative() {
		return fmt.Errorf("price must not be negative: %w", ErrInvalidProduct)
	}
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s failed %q check: %w", verrs[0].Field(), verrs[0].Tag(), ErrInvalidProduct)
		}
		return fmt.Errorf("%v: %w", err, ErrInvalidProduct)
	}
	return nil
}

// WithDefaults fills the fields the form pre-populates.
func (p NewProduct) WithDefaults() NewProduct {
	if p.ImageURL == "" {
		p.ImageURL = DefaultProductImageURL
	}
	return p
}
