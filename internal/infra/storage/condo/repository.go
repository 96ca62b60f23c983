package condo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CondoService/pkg/psqlbuilder"
)

// Repository репозиторий настроек кондоминиума.
// В таблице condominium живет единственная строка.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает запись настроек. Если настройки еще не заданы,
// возвращает ErrNotConfigured.
func (r *Repository) Get(ctx context.Context) (*domain.Condominium, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"cnpj",
		"address",
		"phone",
		"tower_count",
		"tower_prefix",
		"tower_naming",
		"party_room_name",
		"party_room_capacity",
		"party_room_rules",
		"party_room_count",
		"party_room_naming",
		"created_at",
		"updated_at",
	).
		From("condominium").
		OrderBy("id").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Condominium
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.CNPJ,
		&c.Address,
		&c.Phone,
		&c.TowerCount,
		&c.TowerPrefix,
		&c.TowerNaming,
		&c.PartyRoomName,
		&c.PartyRoomCapacity,
		&c.PartyRoomRules,
		&c.PartyRoomCount,
		&c.PartyRoomNaming,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan condominium: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// Save создает или обновляет единственную запись настроек
func (r *Repository) Save(ctx context.Context, c *domain.Condominium) (*domain.Condominium, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	existing, err := r.Get(ctx)
	if err != nil && err != ErrNotConfigured {
		return nil, err
	}

	if existing == nil {
		query, args, buildErr := psqlbuilder.Insert("condominium").
			Columns(
				"name", "cnpj", "address", "phone",
				"tower_count", "tower_prefix", "tower_naming",
				"party_room_name", "party_room_capacity", "party_room_rules",
				"party_room_count", "party_room_naming",
			).
			Values(
				c.Name, c.CNPJ, c.Address, c.Phone,
				c.TowerCount, c.TowerPrefix, c.TowerNaming,
				c.PartyRoomName, c.PartyRoomCapacity, c.PartyRoomRules,
				c.PartyRoomCount, c.PartyRoomNaming,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()

		if buildErr != nil {
			return nil, fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, buildErr)
		}

		var createdAt, updatedAt sql.NullTime
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time
		return c, nil
	}

	query, args, buildErr := psqlbuilder.Update("condominium").
		Set("name", c.Name).
		Set("cnpj", c.CNPJ).
		Set("address", c.Address).
		Set("phone", c.Phone).
		Set("tower_count", c.TowerCount).
		Set("tower_prefix", c.TowerPrefix).
		Set("tower_naming", c.TowerNaming).
		Set("party_room_name", c.PartyRoomName).
		Set("party_room_capacity", c.PartyRoomCapacity).
		Set("party_room_rules", c.PartyRoomRules).
		Set("party_room_count", c.PartyRoomCount).
		Set("party_room_naming", c.PartyRoomNaming).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": existing.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if buildErr != nil {
		return nil, fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, buildErr)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	c.ID = existing.ID
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}
