package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/avkarpov/currency_exchange_app/internal/core/ports/repositories"
	"github.com/avkarpov/currency_exchange_app/internal/models"
	"github.com/avkarpov/currency_exchange_app/internal/utils/mapping"
)

// PgxCurrencyRepository implements currency persistence on PostgreSQL.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new repository for currency data.
func NewPgxCurrencyRepository(pool PgxPoolIface) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// InsertCurrency persists a new currency and returns it with the assigned id.
// A code collision surfaces as a conflict error, never as a raw driver error.
func (r *PgxCurrencyRepository) InsertCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (code, name, sign)
		VALUES ($1, $2, $3)
		RETURNING currency_id;
	`
	err := r.Pool.QueryRow(ctx, query, modelCurr.Code, modelCurr.Name, modelCurr.Sign).
		Scan(&modelCurr.CurrencyID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("currency with code %s already exists", modelCurr.Code))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert currency", err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByCode retrieves a currency by its normalized code. Absence is
// not an error: the caller decides.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT currency_id, code, name, sign
		FROM currencies
		WHERE code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.Code,
		&modelCurr.Name,
		&modelCurr.Sign,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError,
			fmt.Sprintf("failed to find currency by code %s", code), err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies ordered by id.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_id, code, name, sign
		FROM currencies
		ORDER BY currency_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query currencies", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.Code,
			&currency.Name,
			&currency.Sign,
		)
		return currency, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan currencies", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
