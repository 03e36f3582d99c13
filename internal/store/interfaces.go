package store

import (
	"context"

	"storefront-service/internal/domain"
)

// Theme values persisted for the UI preference.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SessionStorer defines the persistence operations for session state: the
// cart line-item list and the theme preference. Implementations must degrade
// to defaults on missing or malformed stored data rather than failing the
// caller; an error is reserved for the backing store itself being unreachable.
type SessionStorer interface {
	LoadCart(ctx context.Context) ([]domain.CartItem, error)
	SaveCart(ctx context.Context, items []domain.CartItem) error
	LoadTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}
