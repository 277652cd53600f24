package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrValidation marks malformed or missing input data. Callers can fix the
// input and retry; match it with errors.Is.
var ErrValidation = errors.New("invalid product data")

// Product is a catalog entry. ID is the store-assigned surrogate key;
// ID == 0 means the product has never been persisted.
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Available   bool            `gorm:"not null"`
	Category    Category        `gorm:"type:varchar(20);not null"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) String() string {
	if p.ID == 0 {
		return fmt.Sprintf("<Product %s id=[None]>", p.Name)
	}
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}

// Validate checks the fields a store write requires.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if !p.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, string(p.Category))
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}
