package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CondoService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с автомобилями жильцов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует новый автомобиль
func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("plate", "model", "color", "type", "unit_id").
		Values(vehicle.Plate, vehicle.Model, vehicle.Color, vehicle.Type, vehicle.UnitID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time

	return vehicle, nil
}

// GetByID получает автомобиль по ID (с данными квартиры)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"v.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	vehicle, err := scanVehicle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return vehicle, nil
}

// List получает автомобили, опционально фильтруя по подстроке номера
// (поиск по госномеру без учета регистра)
func (r *Repository) List(ctx context.Context, plateQuery string) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBuilder().OrderBy("v.plate ASC")

	if plateQuery != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"v.plate": "%" + plateQuery + "%"})
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

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		vehicle, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}

// Update обновляет данные автомобиля
func (r *Repository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("plate", vehicle.Plate).
		Set("model", vehicle.Model).
		Set("color", vehicle.Color).
		Set("type", vehicle.Type).
		Set("unit_id", vehicle.UnitID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vehicle.ID}).
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
		return ErrVehicleNotFound
	}

	return nil
}

// Delete удаляет автомобиль
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// Count возвращает количество автомобилей (для дашборда)
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("vehicles").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"v.id",
		"v.plate",
		"v.model",
		"v.color",
		"v.type",
		"v.unit_id",
		"u.unit_number",
		"u.block",
		"u.resident_name",
		"v.created_at",
		"v.updated_at",
	).
		From("vehicles v").
		Join("units u ON u.id = v.unit_id")
}

func scanVehicle(scan func(dest ...interface{}) error) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&vehicle.ID,
		&vehicle.Plate,
		&vehicle.Model,
		&vehicle.Color,
		&vehicle.Type,
		&vehicle.UnitID,
		&vehicle.UnitNumber,
		&vehicle.UnitBlock,
		&vehicle.ResidentName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time
	return &vehicle, nil
}
