package provider

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CondoService/pkg/psqlbuilder"
)

// Repository репозиторий журнала входов подрядчиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подрядчиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует вход подрядчика
func (r *Repository) Create(ctx context.Context, p *domain.ServiceProvider) (*domain.ServiceProvider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_providers").
		Columns("name", "document", "company", "photo_key", "entry_time", "unit_id", "created_by").
		Values(p.Name, p.Document, p.Company, p.PhotoKey, p.EntryTime, p.UnitID, p.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает запись о подрядчике по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"p.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanProvider(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %v", ErrScanRow, err)
	}

	return p, nil
}

// List получает записи журнала. При onlyActive возвращает только
// находящихся на территории (exit_time IS NULL). Limit = 0 — без ограничения.
func (r *Repository) List(ctx context.Context, onlyActive bool, limit uint64) ([]*domain.ServiceProvider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBuilder().OrderBy("p.entry_time DESC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"p.exit_time": nil})
	}
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.ServiceProvider, 0)
	for rows.Next() {
		p, err := scanProvider(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		providers = append(providers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return providers, nil
}

// RegisterExit отмечает выход подрядчика. Повторная отметка возвращает
// ErrAlreadyCheckedOut, несуществующая запись — ErrProviderNotFound.
func (r *Repository) RegisterExit(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("service_providers").
		Set("exit_time", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("exit_time IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RegisterExit - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RegisterExit - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RegisterExit - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return ErrProviderNotFound
		}
		return ErrAlreadyCheckedOut
	}

	return nil
}

// CountActive возвращает число подрядчиков на территории (для дашборда)
func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("service_providers").
		Where(squirrel.Eq{"exit_time": nil}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"p.id",
		"p.name",
		"p.document",
		"p.company",
		"p.photo_key",
		"p.entry_time",
		"p.exit_time",
		"p.unit_id",
		"p.created_by",
		"u.unit_number",
		"u.block",
		"p.created_at",
		"p.updated_at",
	).
		From("service_providers p").
		LeftJoin("units u ON u.id = p.unit_id")
}

func scanProvider(scan func(dest ...interface{}) error) (*domain.ServiceProvider, error) {
	var p domain.ServiceProvider
	var entryAt, createdAt, updatedAt sql.NullTime

	err := scan(
		&p.ID,
		&p.Name,
		&p.Document,
		&p.Company,
		&p.PhotoKey,
		&entryAt,
		&p.ExitTime,
		&p.UnitID,
		&p.CreatedBy,
		&p.UnitNumber,
		&p.UnitBlock,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.EntryTime = entryAt.Time
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}
