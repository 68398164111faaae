// Package relation implements the unique-pair registries behind favorites,
// shopping-cart entries and subscriptions. Each registry shares the same
// toggle semantics: Add refuses an existing pair, Remove refuses an absent
// one.
package relation

import (
	"context"
	"fmt"

	"github.com/annsokol/foodbook/internal/database"
)

var (
	ErrAlreadyExists    = fmt.Errorf("relation already exists")
	ErrNotFound         = fmt.Errorf("relation does not exist")
	ErrSelfSubscription = fmt.Errorf("cannot subscribe to yourself")
)

// Registry is a unique (subject, object) pair store with toggle semantics.
// The three function fields bind it to a concrete join table; an optional
// Check runs before any insert.
type Registry struct {
	Exists func(ctx context.Context, subject, object int64) (bool, error)
	Insert func(ctx context.Context, subject, object int64) error
	Delete func(ctx context.Context, subject, object int64) (int64, error)
	Check  func(subject, object int64) error
}

// Add inserts the pair. An existing pair is reported as ErrAlreadyExists,
// both on the pre-check and when a concurrent writer wins the race on the
// unique constraint.
func (r Registry) Add(ctx context.Context, subject, object int64) error {
	if r.Check != nil {
		if err := r.Check(subject, object); err != nil {
			return err
		}
	}

	exists, err := r.Exists(ctx, subject, object)
	if err != nil {
		return fmt.Errorf("checking relation: %w", err)
	}
	if exists {
		return ErrAlreadyExists
	}

	if err := r.Insert(ctx, subject, object); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("inserting relation: %w", err)
	}
	return nil
}

// Remove deletes the pair. Deleting a pair that was never added is reported
// as ErrNotFound so callers can surface a client error rather than a fault.
func (r Registry) Remove(ctx context.Context, subject, object int64) error {
	deleted, err := r.Delete(ctx, subject, object)
	if err != nil {
		return fmt.Errorf("deleting relation: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// Favorites binds a registry to the favorites table, keyed (user, recipe).
func Favorites(q database.Querier) Registry {
	return Registry{
		Exists: func(ctx context.Context, user, recipe int64) (bool, error) {
			return q.FavoriteExists(ctx, database.FavoriteExistsParams{UserID: user, RecipeID: recipe})
		},
		Insert: func(ctx context.Context, user, recipe int64) error {
			return q.CreateFavorite(ctx, database.CreateFavoriteParams{UserID: user, RecipeID: recipe})
		},
		Delete: func(ctx context.Context, user, recipe int64) (int64, error) {
			return q.DeleteFavorite(ctx, database.DeleteFavoriteParams{UserID: user, RecipeID: recipe})
		},
	}
}

// ShoppingCart binds a registry to the shopping_cart table, keyed
// (user, recipe). Removal deletes from the cart table only.
func ShoppingCart(q database.Querier) Registry {
	return Registry{
		Exists: func(ctx context.Context, user, recipe int64) (bool, error) {
			return q.CartEntryExists(ctx, database.CartEntryExistsParams{UserID: user, RecipeID: recipe})
		},
		Insert: func(ctx context.Context, user, recipe int64) error {
			return q.CreateCartEntry(ctx, database.CreateCartEntryParams{UserID: user, RecipeID: recipe})
		},
		Delete: func(ctx context.Context, user, recipe int64) (int64, error) {
			return q.DeleteCartEntry(ctx, database.DeleteCartEntryParams{UserID: user, RecipeID: recipe})
		},
	}
}

// Subscriptions binds a registry to the subscriptions table, keyed
// (subscriber, author). Subscribing to oneself is rejected.
func Subscriptions(q database.Querier) Registry {
	return Registry{
		Exists: func(ctx context.Context, subscriber, author int64) (bool, error) {
			return q.SubscriptionExists(ctx, database.SubscriptionExistsParams{SubscriberID: subscriber, AuthorID: author})
		},
		Insert: func(ctx context.Context, subscriber, author int64) error {
			return q.CreateSubscription(ctx, database.CreateSubscriptionParams{SubscriberID: subscriber, AuthorID: author})
		},
		Delete: func(ctx context.Context, subscriber, author int64) (int64, error) {
			return q.DeleteSubscription(ctx, database.DeleteSubscriptionParams{SubscriberID: subscriber, AuthorID: author})
		},
		Check: func(subscriber, author int64) error {
			if subscriber == author {
				return ErrSelfSubscription
			}
			return nil
		},
	}
}
