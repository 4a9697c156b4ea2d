package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"socialid/src/core/domain"
	"socialid/src/core/ports"
	"socialid/src/infra/db"
	"socialid/src/infra/logger"
)

// PostgresRepository implements ProviderRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

var _ ports.ProviderRepository = (*PostgresRepository)(nil)

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// storeError wraps err with op. Connection failures and timeouts become
// unavailable errors so the HTTP layer answers 503.
func storeError(op string, err error) error {
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, domain.NewUnavailableError(err.Error()))
	}
	return fmt.Errorf("%s: %w", op, err)
}

const providerColumns = `provider_id, domain_name, display_name, created_at`

func scanProvider(row pgx.Row) (*domain.Provider, error) {
	var (
		p    domain.Provider
		wire string
	)
	if err := row.Scan(&p.ID, &wire, &p.DisplayName, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Domain = domain.DomainNameFromWire(wire)
	return &p, nil
}

func (r *PostgresRepository) CreateProvider(ctx context.Context, p domain.Provider) (*domain.Provider, error) {
	const q = `
		INSERT INTO providers (domain_name, display_name)
		VALUES ($1, $2)
		RETURNING ` + providerColumns

	created, err := scanProvider(r.pool.QueryRow(ctx, q, p.Domain.String(), p.DisplayName))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("provider already registered")
		}
		return nil, storeError("insert provider "+p.Domain.String(), err)
	}
	return created, nil
}

func (r *PostgresRepository) GetProviderByDomain(ctx context.Context, d domain.DomainName) (*domain.Provider, error) {
	const q = `SELECT ` + providerColumns + ` FROM providers WHERE domain_name = $1`

	p, err := scanProvider(r.pool.QueryRow(ctx, q, d.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("provider")
		}
		return nil, storeError("get provider "+d.String(), err)
	}
	return p, nil
}

func (r *PostgresRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	const q = `SELECT ` + providerColumns + ` FROM providers ORDER BY domain_name`
	return r.queryProviders(ctx, q)
}

func (r *PostgresRepository) ListProvidersByDomains(ctx context.Context, ds []domain.DomainName) ([]domain.Provider, error) {
	if len(ds) == 0 {
		return nil, nil
	}
	wires := make([]string, len(ds))
	for i, d := range ds {
		wires[i] = d.String()
	}

	const q = `SELECT ` + providerColumns + ` FROM providers WHERE domain_name = ANY($1) ORDER BY domain_name`
	return r.queryProviders(ctx, q, wires)
}

func (r *PostgresRepository) queryProviders(ctx context.Context, q string, args ...any) ([]domain.Provider, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, storeError("list providers", err)
	}
	defer rows.Close()

	var out []domain.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list providers", err)
	}
	return out, nil
}

func (r *PostgresRepository) DeleteProvider(ctx context.Context, d domain.DomainName) error {
	const q = `DELETE FROM providers WHERE domain_name = $1`

	tag, err := r.pool.Exec(ctx, q, d.String())
	if err != nil {
		return storeError("delete provider "+d.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("provider")
	}
	logger.Debug(r.log, "provider row deleted", "domain", d.String())
	return nil
}
