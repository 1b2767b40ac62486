package pgsql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
)

func currencyColumns() []string {
	return []string{"currency_id", "code", "name", "sign"}
}

func TestCurrencyRepo_InsertCurrency(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPgxCurrencyRepository(mock)

	mock.ExpectQuery("INSERT INTO currencies").
		WithArgs("EUR", "Euro", "€").
		WillReturnRows(pgxmock.NewRows([]string{"currency_id"}).AddRow(int64(2)))

	inserted, err := repo.InsertCurrency(context.Background(), eurFixture())

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, int64(2), inserted.CurrencyID)
	assert.Equal(t, "EUR", inserted.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepo_InsertCurrency_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPgxCurrencyRepository(mock)

	mock.ExpectQuery("INSERT INTO currencies").
		WithArgs("EUR", "Euro", "€").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "currencies_code_key"})

	inserted, err := repo.InsertCurrency(context.Background(), eurFixture())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Nil(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepo_FindCurrencyByCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPgxCurrencyRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM currencies").
		WithArgs("EUR").
		WillReturnRows(pgxmock.NewRows(currencyColumns()).
			AddRow(int64(2), "EUR", "Euro", "€"))

	currency, err := repo.FindCurrencyByCode(context.Background(), "EUR")

	require.NoError(t, err)
	require.NotNil(t, currency)
	assert.Equal(t, int64(2), currency.CurrencyID)
	assert.Equal(t, "Euro", currency.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A missing currency is (nil, nil), never an error.
func TestCurrencyRepo_FindCurrencyByCode_Miss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPgxCurrencyRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM currencies").
		WithArgs("GBP").
		WillReturnError(pgx.ErrNoRows)

	currency, err := repo.FindCurrencyByCode(context.Background(), "GBP")

	require.NoError(t, err)
	assert.Nil(t, currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepo_ListCurrencies(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPgxCurrencyRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM currencies").
		WillReturnRows(pgxmock.NewRows(currencyColumns()).
			AddRow(int64(1), "USD", "US Dollar", "$").
			AddRow(int64(2), "EUR", "Euro", "€"))

	currencies, err := repo.ListCurrencies(context.Background())

	require.NoError(t, err)
	require.Len(t, currencies, 2)
	assert.Equal(t, "USD", currencies[0].Code)
	assert.Equal(t, "EUR", currencies[1].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
