package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/avkarpov/currency_exchange_app/internal/core/ports/repositories"
	"github.com/avkarpov/currency_exchange_app/internal/models"
	"github.com/avkarpov/currency_exchange_app/internal/utils/mapping"
)

// selectExchangeRateView joins both currencies into every rate row, so callers
// never need a second lookup.
const selectExchangeRateView = `
	SELECT
		er.exchange_rate_id,
		bc.currency_id, bc.code, bc.name, bc.sign,
		tc.currency_id, tc.code, tc.name, tc.sign,
		er.rate
	FROM exchange_rates er
	JOIN currencies bc ON er.base_currency_id = bc.currency_id
	JOIN currencies tc ON er.target_currency_id = tc.currency_id`

// PgxExchangeRateRepository implements exchange rate persistence on PostgreSQL.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new repository for exchange rate data.
func NewPgxExchangeRateRepository(pool PgxPoolIface) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// FindExchangeRate retrieves the stored rate for the exact ordered pair.
// Absence is not an error: the caller decides.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error) {
	query := selectExchangeRateView + `
	WHERE bc.code = $1 AND tc.code = $2;`

	view, err := scanExchangeRateView(r.Pool.QueryRow(ctx, query, baseCode, targetCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError,
			fmt.Sprintf("failed to find exchange rate %s-%s", baseCode, targetCode), err)
	}

	return viewToDomain(view)
}

// ListExchangeRates retrieves all stored rates ordered by id.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := selectExchangeRateView + `
	ORDER BY er.exchange_rate_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query exchange rates", err)
	}
	defer rows.Close()

	var views []models.ExchangeRateView
	for rows.Next() {
		view, err := scanExchangeRateView(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan exchange rate", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating exchange rates", err)
	}

	rates, err := mapping.ToDomainExchangeRateSlice(views)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "corrupt exchange rate row", err)
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	return rates, nil
}

// InsertExchangeRate persists a new rate for the ordered pair, resolving both
// currency ids from their codes in the same statement. The whole operation is
// one transaction: nothing is persisted on any failure.
func (r *PgxExchangeRateRepository) InsertExchangeRate(ctx context.Context, baseCode, targetCode string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO exchange_rates (base_currency_id, target_currency_id, rate)
		SELECT bc.currency_id, tc.currency_id, $1
		FROM currencies bc CROSS JOIN currencies tc
		WHERE bc.code = $2 AND tc.code = $3
		RETURNING exchange_rate_id;
	`
	var rateID int64
	err = tx.QueryRow(ctx, query, rate.String(), baseCode, targetCode).Scan(&rateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("one or both currencies for the exchange rate not found")
		}
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("exchange rate for %s-%s already exists", baseCode, targetCode))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert exchange rate", err)
	}

	inserted, err := r.findViewByID(ctx, tx, rateID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return inserted, nil
}

// UpdateExchangeRate overwrites the rate for an existing ordered pair. Returns
// (nil, nil) when no rate is stored for that pair.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, baseCode, targetCode string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE exchange_rates er
		SET rate = $1
		FROM currencies bc, currencies tc
		WHERE er.base_currency_id = bc.currency_id
		  AND er.target_currency_id = tc.currency_id
		  AND bc.code = $2 AND tc.code = $3
		RETURNING er.exchange_rate_id;
	`
	var rateID int64
	err = tx.QueryRow(ctx, query, rate.String(), baseCode, targetCode).Scan(&rateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to update exchange rate", err)
	}

	updated, err := r.findViewByID(ctx, tx, rateID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}

// findViewByID re-reads the denormalized view for a freshly written rate,
// inside the same transaction.
func (r *PgxExchangeRateRepository) findViewByID(ctx context.Context, q rowQuerier, rateID int64) (*domain.ExchangeRate, error) {
	query := selectExchangeRateView + `
	WHERE er.exchange_rate_id = $1;`

	view, err := scanExchangeRateView(q.QueryRow(ctx, query, rateID))
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read back exchange rate", err)
	}
	return viewToDomain(view)
}

func viewToDomain(view models.ExchangeRateView) (*domain.ExchangeRate, error) {
	domainRate, err := mapping.ToDomainExchangeRate(view)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "corrupt exchange rate row", err)
	}
	return &domainRate, nil
}

func scanExchangeRateView(row pgx.Row) (models.ExchangeRateView, error) {
	var v models.ExchangeRateView
	err := row.Scan(
		&v.ExchangeRateID,
		&v.BaseCurrencyID, &v.BaseCurrencyCode, &v.BaseCurrencyName, &v.BaseCurrencySign,
		&v.TargetCurrencyID, &v.TargetCurrencyCode, &v.TargetCurrencyName, &v.TargetCurrencySign,
		&v.Rate,
	)
	return v, err
}
