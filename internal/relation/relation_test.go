package relation

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"

	"github.com/annsokol/foodbook/internal/database"
)

func TestFavoritesAdd(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mockDB *database.MockQuerier)
		wantErr error
	}{
		{
			name: "new favorite",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					FavoriteExists(gomock.Any(), database.FavoriteExistsParams{UserID: 1, RecipeID: 2}).
					Return(false, nil)
				mockDB.EXPECT().
					CreateFavorite(gomock.Any(), database.CreateFavoriteParams{UserID: 1, RecipeID: 2}).
					Return(nil)
			},
			wantErr: nil,
		},
		{
			name: "already favorited",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					FavoriteExists(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: ErrAlreadyExists,
		},
		{
			name: "concurrent insert loses the race",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					FavoriteExists(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockDB.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505"})
			},
			wantErr: ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			err := Favorites(mockDB).Add(context.Background(), 1, 2)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestShoppingCartRemove(t *testing.T) {
	tests := []struct {
		name    string
		deleted int64
		wantErr error
	}{
		{name: "entry removed", deleted: 1, wantErr: nil},
		{name: "entry never added", deleted: 0, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			mockDB.EXPECT().
				DeleteCartEntry(gomock.Any(), database.DeleteCartEntryParams{UserID: 1, RecipeID: 2}).
				Return(tt.deleted, nil)

			err := ShoppingCart(mockDB).Remove(context.Background(), 1, 2)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Remove() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubscriptionsAdd(t *testing.T) {
	t.Run("self subscription rejected before any query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := database.NewMockQuerier(ctrl)

		err := Subscriptions(mockDB).Add(context.Background(), 7, 7)
		if !errors.Is(err, ErrSelfSubscription) {
			t.Errorf("Add() error = %v, want %v", err, ErrSelfSubscription)
		}
	})

	t.Run("new subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := database.NewMockQuerier(ctrl)
		mockDB.EXPECT().
			SubscriptionExists(gomock.Any(), database.SubscriptionExistsParams{SubscriberID: 7, AuthorID: 8}).
			Return(false, nil)
		mockDB.EXPECT().
			CreateSubscription(gomock.Any(), database.CreateSubscriptionParams{SubscriberID: 7, AuthorID: 8}).
			Return(nil)

		if err := Subscriptions(mockDB).Add(context.Background(), 7, 8); err != nil {
			t.Errorf("Add() error = %v, want nil", err)
		}
	})
}
