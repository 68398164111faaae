// Package recipe contains utilities for managing recipes.
package recipe

import (
	"errors"
	"fmt"
)

const (
	MinCookingTime = 1
	MaxCookingTime = 32000
	MinAmount      = 1
	MaxAmount      = 32000
)

var (
	ErrNoTags                = errors.New("recipe needs at least one tag")
	ErrDuplicateTag          = errors.New("duplicate tag")
	ErrNoIngredients         = errors.New("recipe needs at least one ingredient")
	ErrDuplicateIngredient   = errors.New("duplicate ingredient")
	ErrAmountOutOfRange      = errors.New("ingredient amount out of range")
	ErrCookingTimeOutOfRange = errors.New("cooking time out of range")
)

// IngredientEntry is one submitted (ingredient, amount) pair.
type IngredientEntry struct {
	ID     int64
	Amount int32
}

// ValidateTags checks that tag ids are non-empty and distinct.
func ValidateTags(tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return ErrNoTags
	}
	seen := make(map[int64]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("tag %d: %w", id, ErrDuplicateTag)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ValidateIngredients checks that entries are non-empty, distinct by
// ingredient id and within the amount bounds.
func ValidateIngredients(entries []IngredientEntry) error {
	if len(entries) == 0 {
		return ErrNoIngredients
	}
	seen := make(map[int64]struct{}, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.ID]; ok {
			return fmt.Errorf("ingredient %d: %w", entry.ID, ErrDuplicateIngredient)
		}
		seen[entry.ID] = struct{}{}
		if entry.Amount < MinAmount || entry.Amount > MaxAmount {
			return fmt.Errorf("ingredient %d amount %d: %w", entry.ID, entry.Amount, ErrAmountOutOfRange)
		}
	}
	return nil
}

// ValidateCookingTime checks the cooking time bounds.
func ValidateCookingTime(minutes int32) error {
	if minutes < MinCookingTime || minutes > MaxCookingTime {
		return fmt.Errorf("cooking time %d: %w", minutes, ErrCookingTimeOutOfRange)
	}
	return nil
}
