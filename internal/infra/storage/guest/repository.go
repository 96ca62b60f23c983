package guest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CondoService/pkg/psqlbuilder"
)

// Repository репозиторий журнала заездов арендных гостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует заезд гостя
func (r *Repository) Create(ctx context.Context, g *domain.RentalGuest) (*domain.RentalGuest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rental_guests").
		Columns("name", "document", "plate", "photo_key", "entry_time", "unit_id", "created_by").
		Values(g.Name, g.Document, g.Plate, g.PhotoKey, g.EntryTime, g.UnitID, g.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&g.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return g, nil
}

// GetByID получает запись о госте по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RentalGuest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"g.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	g, err := scanGuest(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guest: %v", ErrScanRow, err)
	}

	return g, nil
}

// List получает записи журнала. При onlyActive возвращает только
// незавершенные заезды (exit_time IS NULL). Limit = 0 — без ограничения.
func (r *Repository) List(ctx context.Context, onlyActive bool, limit uint64) ([]*domain.RentalGuest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBuilder().OrderBy("g.entry_time DESC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"g.exit_time": nil})
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

	guests := make([]*domain.RentalGuest, 0)
	for rows.Next() {
		g, err := scanGuest(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		guests = append(guests, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return guests, nil
}

// RegisterExit отмечает выезд гостя. Повторная отметка возвращает
// ErrAlreadyCheckedOut, несуществующая запись — ErrGuestNotFound.
func (r *Repository) RegisterExit(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rental_guests").
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
			return ErrGuestNotFound
		}
		return ErrAlreadyCheckedOut
	}

	return nil
}

// CountActive возвращает число гостей на территории (для дашборда)
func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rental_guests").
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
		"g.id",
		"g.name",
		"g.document",
		"g.plate",
		"g.photo_key",
		"g.entry_time",
		"g.exit_time",
		"g.unit_id",
		"g.created_by",
		"u.unit_number",
		"u.block",
		"u.resident_name",
		"g.created_at",
		"g.updated_at",
	).
		From("rental_guests g").
		Join("units u ON u.id = g.unit_id")
}

func scanGuest(scan func(dest ...interface{}) error) (*domain.RentalGuest, error) {
	var g domain.RentalGuest
	var entryAt, createdAt, updatedAt sql.NullTime

	err := scan(
		&g.ID,
		&g.Name,
		&g.Document,
		&g.Plate,
		&g.PhotoKey,
		&entryAt,
		&g.ExitTime,
		&g.UnitID,
		&g.CreatedBy,
		&g.UnitNumber,
		&g.UnitBlock,
		&g.ResidentName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.EntryTime = entryAt.Time
	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time
	return &g, nil
}
