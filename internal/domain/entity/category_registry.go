// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// DeletedCategoryName groups transactions whose category reference looks
	// like an id of a category that no longer exists.
	DeletedCategoryName = "Deleted category"

	// UnknownCategoryName groups transactions with an empty category reference.
	UnknownCategoryName = "Unknown"
)

// legacyCategoryNames maps category names from early releases to their
// current canonical names. Old transactions still carry these references.
var legacyCategoryNames = map[string]string{
	"Ăn uống":    "Food & Dining",
	"Giao thông": "Transportation",
	"Giáo dục":   "Education",
	"Tiện ích":   "Utilities",
	"Giải trí":   "Entertainment",
}

// Dangling references shorter than this are treated as plain names rather
// than ids from the pre-migration store.
const danglingIDMinLength = 16

// CategoryRegistry resolves raw category references (ids, current names,
// legacy names, dangling ids) to canonical category names. It is built per
// request from the user's category list and is immutable afterwards.
type CategoryRegistry struct {
	nameByID   map[string]string
	knownNames map[string]struct{}
	expense    map[string]struct{}
}

// NewCategoryRegistry builds a registry from a category list.
func NewCategoryRegistry(categories []*Category) *CategoryRegistry {
	r := &CategoryRegistry{
		nameByID:   make(map[string]string, len(categories)),
		knownNames: make(map[string]struct{}, len(categories)),
		expense:    make(map[string]struct{}),
	}
	for _, c := range categories {
		r.nameByID[c.ID.String()] = c.Name
		r.knownNames[c.Name] = struct{}{}
		if c.Type == CategoryTypeExpense {
			r.expense[c.Name] = struct{}{}
		}
	}
	return r
}

// Resolve maps a raw category reference to a canonical category name.
//
// Resolution order: id match, exact name match, legacy-name mapping,
// dangling-id detection, then the (legacy-mapped) reference as-is. An empty
// reference resolves to UnknownCategoryName.
func (r *CategoryRegistry) Resolve(ref string) string {
	if strings.TrimSpace(ref) == "" {
		return UnknownCategoryName
	}
	if name, ok := r.nameByID[ref]; ok {
		return name
	}
	if _, ok := r.knownNames[ref]; ok {
		return ref
	}
	mapped := mapLegacyName(ref)
	if _, ok := r.knownNames[mapped]; ok {
		return mapped
	}
	if looksLikeDanglingID(ref) {
		return DeletedCategoryName
	}
	return mapped
}

// IsExpense reports whether the resolved name belongs to an expense category.
func (r *CategoryRegistry) IsExpense(name string) bool {
	_, ok := r.expense[name]
	return ok
}

// ExpenseCategories returns the set of canonical expense category names.
func (r *CategoryRegistry) ExpenseCategories() map[string]struct{} {
	return r.expense
}

func mapLegacyName(ref string) string {
	if mapped, ok := legacyCategoryNames[ref]; ok {
		return mapped
	}
	return ref
}

// looksLikeDanglingID detects references that are ids of deleted categories:
// UUIDs from the current store, or long opaque tokens from the pre-migration
// store (no spaces, no hyphens).
func looksLikeDanglingID(ref string) bool {
	if _, err := uuid.Parse(ref); err == nil {
		return true
	}
	if len(ref) < danglingIDMinLength {
		return false
	}
	return !strings.ContainsAny(ref, " -")
}
