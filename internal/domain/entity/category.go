package entity

import "fmt"

// Category is the closed set of product categories. The zero-ish member
// UNKNOWN is a valid category, not an error marker.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories returns every known category.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// IsValid reports whether c is a member of the known set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryUnknown, CategoryCloths, CategoryFood, CategoryHousewares, CategoryAutomotive, CategoryTools:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory maps the external symbolic name onto a Category.
// Unknown names are rejected with ErrValidation.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrValidation, name)
	}
	return c, nil
}
