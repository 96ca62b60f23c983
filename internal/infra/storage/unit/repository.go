package unit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CondoService/pkg/psqlbuilder"
)

// foreignKeyViolation код ошибки PostgreSQL при нарушении внешнего ключа
const foreignKeyViolation = "23503"

// Repository репозиторий для работы с квартирами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория квартир
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую квартиру
func (r *Repository) Create(ctx context.Context, unit *domain.Unit) (*domain.Unit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("units").
		Columns("unit_number", "block", "resident_name", "phone_number").
		Values(unit.UnitNumber, unit.Block, unit.ResidentName, unit.PhoneNumber).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&unit.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	unit.CreatedAt = createdAt.Time
	unit.UpdatedAt = updatedAt.Time

	return unit, nil
}

// GetByID получает квартиру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "unit_number", "block", "resident_name", "phone_number", "created_at", "updated_at",
	).
		From("units").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var unit domain.Unit
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&unit.ID,
		&unit.UnitNumber,
		&unit.Block,
		&unit.ResidentName,
		&unit.PhoneNumber,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUnitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan unit: %v", ErrScanRow, err)
	}

	unit.CreatedAt = createdAt.Time
	unit.UpdatedAt = updatedAt.Time

	return &unit, nil
}

// List получает все квартиры, отсортированные по номеру
func (r *Repository) List(ctx context.Context) ([]*domain.Unit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "unit_number", "block", "resident_name", "phone_number", "created_at", "updated_at",
	).
		From("units").
		OrderBy("unit_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	units := make([]*domain.Unit, 0)
	for rows.Next() {
		var unit domain.Unit
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&unit.ID,
			&unit.UnitNumber,
			&unit.Block,
			&unit.ResidentName,
			&unit.PhoneNumber,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		unit.CreatedAt = createdAt.Time
		unit.UpdatedAt = updatedAt.Time

		units = append(units, &unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return units, nil
}

// Update обновляет данные квартиры
func (r *Repository) Update(ctx context.Context, unit *domain.Unit) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("units").
		Set("unit_number", unit.UnitNumber).
		Set("block", unit.Block).
		Set("resident_name", unit.ResidentName).
		Set("phone_number", unit.PhoneNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": unit.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUnitNotFound
	}

	return nil
}

// Delete удаляет квартиру. Если на квартиру ссылаются другие записи
// (автомобили, посылки, бронирования), возвращает ErrUnitInUse.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("units").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
			return ErrUnitInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUnitNotFound
	}

	return nil
}

// Count возвращает количество квартир (для дашборда)
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("units").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
