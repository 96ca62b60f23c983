package schema

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CondoService/pkg/dbmetrics"
)

// statements декларативное описание схемы. Каждый statement идемпотентен
// (IF NOT EXISTS), поэтому Apply безопасно выполнять при каждом старте:
// применяется только разница между желаемой и текущей схемой.
//
// Ключевой инвариант уровня хранилища: UNIQUE (booking_date, room_id, period)
// на party_room_bookings. Клиентская проверка доступности — только UX-подсказка;
// единственный источник истины при гонке двух создателей — это ограничение,
// проигравший получает unique_violation.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS units (
		id BIGSERIAL PRIMARY KEY,
		unit_number TEXT NOT NULL,
		block TEXT,
		resident_name TEXT NOT NULL,
		phone_number TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'operator',
		must_change_password BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS vehicles (
		id BIGSERIAL PRIMARY KEY,
		plate TEXT NOT NULL,
		model TEXT NOT NULL,
		color TEXT,
		type TEXT NOT NULL DEFAULT 'car',
		unit_id BIGINT NOT NULL REFERENCES units(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS service_providers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		document TEXT,
		company TEXT,
		photo_key TEXT,
		entry_time TIMESTAMPTZ NOT NULL,
		exit_time TIMESTAMPTZ,
		unit_id BIGINT REFERENCES units(id),
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS rental_guests (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		document TEXT,
		plate TEXT,
		photo_key TEXT,
		entry_time TIMESTAMPTZ NOT NULL,
		exit_time TIMESTAMPTZ,
		unit_id BIGINT NOT NULL REFERENCES units(id),
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS parcels (
		id BIGSERIAL PRIMARY KEY,
		protocol_number TEXT NOT NULL,
		description TEXT NOT NULL,
		photo_key TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		arrived_at TIMESTAMPTZ NOT NULL,
		collected_at TIMESTAMPTZ,
		unit_id BIGINT NOT NULL REFERENCES units(id),
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS party_room_bookings (
		id BIGSERIAL PRIMARY KEY,
		booking_date DATE NOT NULL,
		room_id INT NOT NULL DEFAULT 1,
		period TEXT NOT NULL,
		unit_id BIGINT NOT NULL REFERENCES units(id),
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS party_room_bookings_slot_key
		ON party_room_bookings (booking_date, room_id, period)`,

	`CREATE TABLE IF NOT EXISTS condominium (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		cnpj TEXT,
		address TEXT,
		phone TEXT,
		tower_count INT NOT NULL DEFAULT 1,
		tower_prefix TEXT,
		tower_naming TEXT,
		party_room_name TEXT NOT NULL DEFAULT '',
		party_room_capacity INT NOT NULL DEFAULT 50,
		party_room_rules TEXT,
		party_room_count INT NOT NULL DEFAULT 1,
		party_room_naming TEXT NOT NULL DEFAULT 'numbers',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS system_logs (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		action TEXT NOT NULL,
		target_collection TEXT,
		target_id TEXT,
		description TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS system_logs_created_at_idx ON system_logs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS parcels_status_idx ON parcels (status)`,
	`CREATE INDEX IF NOT EXISTS service_providers_exit_idx ON service_providers (exit_time)`,
	`CREATE INDEX IF NOT EXISTS rental_guests_exit_idx ON rental_guests (exit_time)`,
	`CREATE INDEX IF NOT EXISTS party_room_bookings_date_idx ON party_room_bookings (booking_date)`,
}

// Apply применяет схему к базе данных. Повторный вызов ничего не меняет.
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: apply statement failed: %w", err)
		}
	}
	return nil
}
