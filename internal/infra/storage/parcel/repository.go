package parcel

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CondoService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с посылками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория посылок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует прибытие посылки
func (r *Repository) Create(ctx context.Context, parcel *domain.Parcel) (*domain.Parcel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parcels").
		Columns(
			"protocol_number",
			"description",
			"photo_key",
			"status",
			"arrived_at",
			"unit_id",
			"created_by",
		).
		Values(
			parcel.ProtocolNumber,
			parcel.Description,
			parcel.PhotoKey,
			parcel.Status,
			parcel.ArrivedAt,
			parcel.UnitID,
			parcel.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&parcel.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	parcel.CreatedAt = createdAt.Time
	parcel.UpdatedAt = updatedAt.Time

	return parcel, nil
}

// GetByID получает посылку по ID (с данными квартиры)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Parcel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"p.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	parcel, err := scanParcel(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrParcelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan parcel: %v", ErrScanRow, err)
	}

	return parcel, nil
}

// List получает посылки, опционально фильтруя по статусу.
// Limit = 0 означает без ограничения.
func (r *Repository) List(ctx context.Context, status *domain.ParcelStatus, limit uint64) ([]*domain.Parcel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBuilder().OrderBy("p.arrived_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"p.status": *status})
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

	parcels := make([]*domain.Parcel, 0)
	for rows.Next() {
		parcel, err := scanParcel(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		parcels = append(parcels, parcel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return parcels, nil
}

// MarkCollected переводит посылку в статус collected.
// Переход разрешён только из pending: повторная выдача возвращает
// ErrAlreadyCollected, несуществующая посылка — ErrParcelNotFound.
func (r *Repository) MarkCollected(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parcels").
		Set("status", domain.ParcelCollected).
		Set("collected_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.ParcelPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkCollected - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCollected - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCollected - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "нет такой посылки" и "уже выдана"
		if _, err := r.GetByID(ctx, id); err != nil {
			return ErrParcelNotFound
		}
		return ErrAlreadyCollected
	}

	return nil
}

// CountPending возвращает количество невыданных посылок (для дашборда)
func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("parcels").
		Where(squirrel.Eq{"status": domain.ParcelPending}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountPending - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountPending - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"p.id",
		"p.protocol_number",
		"p.description",
		"p.photo_key",
		"p.status",
		"p.arrived_at",
		"p.collected_at",
		"p.unit_id",
		"p.created_by",
		"u.unit_number",
		"u.block",
		"u.resident_name",
		"p.created_at",
		"p.updated_at",
	).
		From("parcels p").
		Join("units u ON u.id = p.unit_id")
}

func scanParcel(scan func(dest ...interface{}) error) (*domain.Parcel, error) {
	var parcel domain.Parcel
	var arrivedAt, createdAt, updatedAt sql.NullTime

	err := scan(
		&parcel.ID,
		&parcel.ProtocolNumber,
		&parcel.Description,
		&parcel.PhotoKey,
		&parcel.Status,
		&arrivedAt,
		&parcel.CollectedAt,
		&parcel.UnitID,
		&parcel.CreatedBy,
		&parcel.UnitNumber,
		&parcel.UnitBlock,
		&parcel.ResidentName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	parcel.ArrivedAt = arrivedAt.Time
	parcel.CreatedAt = createdAt.Time
	parcel.UpdatedAt = updatedAt.Time
	return &parcel, nil
}
