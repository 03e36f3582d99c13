package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"storefront-service/internal/domain"
)

// Key-value entries under which session state is stored.
const (
	keyCart  = "cart"
	keyTheme = "theme"
)

// PostgresStore implements the SessionStorer interface using a single
// key-value table in PostgreSQL. The cart is stored as one JSON document and
// the theme as a bare string, mirroring the two independent entries the
// storefront keeps in durable storage.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgresStore instance.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the session table if it does not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS storefront_session (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("store: Init failed to create session table: %w", err)
	}
	return nil
}

// LoadCart returns the previously saved cart. A missing entry or a value
// that fails to parse yields an empty cart, never an error: corrupt stored
// data must not take the session down. An error is returned only when the
// database itself cannot be queried.
func (s *PostgresStore) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	raw, err := s.get(ctx, keyCart)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.CartItem{}, nil
		}
		return nil, fmt.Errorf("store: LoadCart failed to read entry: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("WARN: Stored cart is malformed, starting with an empty cart: %v", err)
		return []domain.CartItem{}, nil
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

// SaveCart overwrites the stored cart with the given line items. Callers
// invoke this after every cart mutation; carts are small, so the full
// rewrite is the accepted trade-off.
func (s *PostgresStore) SaveCart(ctx context.Context, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: SaveCart failed to encode cart: %w", err)
	}
	if err := s.put(ctx, keyCart, string(raw)); err != nil {
		return fmt.Errorf("store: SaveCart failed to write entry: %w", err)
	}
	return nil
}

// LoadTheme returns the persisted theme preference. A missing entry or an
// unknown value falls back to the light theme.
func (s *PostgresStore) LoadTheme(ctx context.Context) (string, error) {
	raw, err := s.get(ctx, keyTheme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ThemeLight, nil
		}
		return "", fmt.Errorf("store: LoadTheme failed to read entry: %w", err)
	}
	if raw != ThemeDark && raw != ThemeLight {
		log.Printf("WARN: Stored theme %q is unknown, falling back to %q", raw, ThemeLight)
		return ThemeLight, nil
	}
	return raw, nil
}

// SaveTheme overwrites the stored theme preference.
func (s *PostgresStore) SaveTheme(ctx context.Context, theme string) error {
	if err := s.put(ctx, keyTheme, theme); err != nil {
		return fmt.Errorf("store: SaveTheme failed to write entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM storefront_session WHERE key = $1;`
	var value string
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

func (s *PostgresStore) put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO storefront_session (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
	`
	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		log.Println("INFO: Closing database connection pool...")
		if err := s.db.Close(); err != nil {
			log.Printf("ERROR: Failed to close database connection pool: %v", err)
			return err
		}
		return nil
	}
	return nil
}
