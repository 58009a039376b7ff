package ledger

import (
	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
)

// Category classifies an expense. The built-in values cover the
// classic kakeibo buckets; anything else is kept as a custom category.
type Category string

const (
	CategoryReplacementOrRepair Category = "Replacement or Repair"
	CategoryGroceries           Category = "Groceries"
	CategorySocial              Category = "Social"
	CategoryHobby               Category = "Hobby"
	CategoryRestaurant          Category = "Restaurant"
	CategoryEntertainment       Category = "Entertainment"
)

// Categories returns the built-in categories in menu order.
func Categories() []Category {
	return []Category{
		CategoryReplacementOrRepair,
		CategoryGroceries,
		CategorySocial,
		CategoryHobby,
		CategoryRestaurant,
		CategoryEntertainment,
	}
}

// Builtin reports whether the category is one of the built-in buckets.
func (c Category) Builtin() bool {
	for _, b := range Categories() {
		if c == b {
			return true
		}
	}
	return false
}

// ParseCategory maps text onto a built-in category, or keeps it as a
// custom one. Empty input is invalid.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidInput, "category must not be empty")
	}
	for _, b := range Categories() {
		if string(b) == s {
			return b, nil
		}
	}
	return Category(s), nil
}
