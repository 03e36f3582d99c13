package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	"storefront-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a mock DB and PostgresStore for testing
func newMockDBAndStore(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresStore) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	store := NewPostgresStore(db)
	require.NotNil(t, store, "Store should not be nil")

	return db, mock, store
}

var (
	getQuery = regexp.QuoteMeta(`SELECT value FROM storefront_session WHERE key = $1;`)
	putQuery = regexp.QuoteMeta(`
		INSERT INTO storefront_session (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
	`)
)

func TestPostgresStore_Init(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	query := regexp.QuoteMeta(`
		CREATE TABLE IF NOT EXISTS storefront_session (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Init(context.Background())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadCart_FirstRun(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).WithArgs("cart").WillReturnError(sql.ErrNoRows)

	items, err := store.LoadCart(context.Background())

	require.NoError(t, err, "a missing entry is not an error")
	assert.Empty(t, items)
	assert.NotNil(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadCart_MalformedValue(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"this is": "not a cart list`)
	mock.ExpectQuery(getQuery).WithArgs("cart").WillReturnRows(rows)

	items, err := store.LoadCart(context.Background())

	require.NoError(t, err, "malformed stored data degrades to an empty cart")
	assert.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CartRoundTrip(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	items := []domain.CartItem{
		{ID: 1, Title: "Backpack", Price: 109.95, Image: "https://example.com/1.jpg", Quantity: 2},
		{ID: 2, Title: "T-Shirt", Price: 22.3, Image: "https://example.com/2.jpg", Quantity: 1},
	}
	encoded, err := json.Marshal(items)
	require.NoError(t, err)

	mock.ExpectExec(putQuery).WithArgs("cart", string(encoded)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(getQuery).WithArgs("cart").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(string(encoded)))

	require.NoError(t, store.SaveCart(context.Background(), items))

	loaded, err := store.LoadCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, loaded, "LoadCart after SaveCart returns an equal cart")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveCart_NilWritesEmptyList(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	mock.ExpectExec(putQuery).WithArgs("cart", "[]").WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.SaveCart(context.Background(), nil)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadTheme_Defaults(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	// First run: no entry at all.
	mock.ExpectQuery(getQuery).WithArgs("theme").WillReturnError(sql.ErrNoRows)
	theme, err := store.LoadTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	// Unknown stored value falls back too.
	mock.ExpectQuery(getQuery).WithArgs("theme").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("solarized"))
	theme, err = store.LoadTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ThemeRoundTrip(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	mock.ExpectExec(putQuery).WithArgs("theme", ThemeDark).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(getQuery).WithArgs("theme").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(ThemeDark))

	require.NoError(t, store.SaveTheme(context.Background(), ThemeDark))

	theme, err := store.LoadTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadCart_QueryError(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).WithArgs("cart").WillReturnError(sql.ErrConnDone)

	_, err := store.LoadCart(context.Background())

	require.Error(t, err, "an unreachable database is reported to the caller")
	require.NoError(t, mock.ExpectationsWereMet())
}
