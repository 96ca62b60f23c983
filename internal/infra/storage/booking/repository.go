package booking

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

// uniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями зала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
//
// Уникальность слота (booking_date, room_id, period) гарантирует БД:
// при конфликте двух одновременных созданий проигравший получает ErrPeriodTaken,
// а не молчаливый дубль.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("party_room_bookings").
		Columns(
			"booking_date",
			"room_id",
			"period",
			"unit_id",
			"created_by",
		).
		Values(
			booking.BookingDate,
			booking.RoomID,
			booking.Period,
			booking.UnitID,
			booking.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrPeriodTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID (с данными квартиры)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией по залу, периоду и квартире.
//
// Внутри транзакции при выборке по закрытому диапазону дат добавляет FOR UPDATE —
// это блокирует строки дня для usecase создания бронирования.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBuilder()

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.room_id": *filter.RoomID})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.booking_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.booking_date": *filter.DateTo})
	}
	if filter.UnitID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.unit_id": *filter.UnitID})
	}

	selectBuilder = selectBuilder.OrderBy("b.booking_date ASC, b.room_id ASC, b.period ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.DateFrom != nil && filter.DateTo != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Delete удаляет бронирование (отмена — это физическое удаление, истории
// изменений у брони нет; журнал активности фиксирует сам факт отмены)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("party_room_bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.booking_date",
		"b.room_id",
		"b.period",
		"b.unit_id",
		"b.created_by",
		"u.unit_number",
		"u.block",
		"u.resident_name",
		"b.created_at",
	).
		From("party_room_bookings b").
		Join("units u ON u.id = b.unit_id")
}

func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := scan(
		&booking.ID,
		&booking.BookingDate,
		&booking.RoomID,
		&booking.Period,
		&booking.UnitID,
		&booking.CreatedBy,
		&booking.UnitNumber,
		&booking.UnitBlock,
		&booking.ResidentName,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}
