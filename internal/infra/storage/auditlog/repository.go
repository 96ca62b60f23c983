package auditlog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CondoService/pkg/psqlbuilder"
)

// Repository репозиторий append-only журнала активности.
// Записи только добавляются и читаются, update/delete не предусмотрены.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
func (r *Repository) Append(ctx context.Context, e *domain.AuditEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("system_logs").
		Columns("user_id", "action", "target_collection", "target_id", "description").
		Values(e.UserID, e.Action, e.TargetCollection, e.TargetID, e.Description).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	e.CreatedAt = createdAt.Time
	return nil
}

// List возвращает записи журнала по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"l.id",
		"l.user_id",
		"l.action",
		"l.target_collection",
		"l.target_id",
		"l.description",
		"u.name",
		"u.email",
		"l.created_at",
	).
		From("system_logs l").
		Join("users u ON u.id = l.user_id").
		OrderBy("l.created_at DESC", "l.id DESC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"l.user_id": *filter.UserID})
	}
	if filter.Action != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"l.action": *filter.Action})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"l.created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"l.created_at": *filter.DateTo})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
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

	entries := make([]*domain.AuditEntry, 0)
	for rows.Next() {
		var e domain.AuditEntry
		var targetCollection, targetID sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Action,
			&targetCollection,
			&targetID,
			&e.Description,
			&e.UserName,
			&e.UserEmail,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		e.TargetCollection = targetCollection.String
		e.TargetID = targetID.String
		e.CreatedAt = createdAt.Time
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
