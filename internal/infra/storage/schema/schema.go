package schema

import (
	"context"
	"fmt"

	"github.com/glameo/glameo-backend/pkg/dbmetrics"
)

// statements DDL схемы. Все операторы идемпотентны - повторный запуск
// ничего не меняет
var statements = []string{
	`CREATE TABLE IF NOT EXISTS salons (
		id                      TEXT PRIMARY KEY,
		owner_id                TEXT NOT NULL,
		name                    TEXT NOT NULL,
		description             TEXT NOT NULL DEFAULT '',
		address                 TEXT NOT NULL DEFAULT '',
		rating                  DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count            INTEGER NOT NULL DEFAULT 0,
		image_url               TEXT NOT NULL DEFAULT '',
		gallery_images          TEXT[] NOT NULL DEFAULT '{}',
		specialties             TEXT[] NOT NULL DEFAULT '{}',
		is_verified             BOOLEAN NOT NULL DEFAULT FALSE,
		category                TEXT NOT NULL,
		free_until_hours        INTEGER NOT NULL DEFAULT 24,
		late_cancel_fee_percent INTEGER NOT NULL DEFAULT 50,
		no_show_fee_percent     INTEGER NOT NULL DEFAULT 100,
		created_at              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at              TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS services (
		id               TEXT NOT NULL,
		salon_id         TEXT NOT NULL REFERENCES salons(id),
		name             TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL,
		buffer_minutes   INTEGER NOT NULL DEFAULT 0,
		price            NUMERIC(10,2) NOT NULL,
		PRIMARY KEY (salon_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id             TEXT PRIMARY KEY,
		salon_id       TEXT NOT NULL,
		service_id     TEXT NOT NULL,
		client_id      TEXT NOT NULL,
		client_name    TEXT NOT NULL,
		scheduled_at   TIMESTAMPTZ NOT NULL,
		status         TEXT NOT NULL,
		total_price    NUMERIC(10,2) NOT NULL,
		payment_status TEXT NOT NULL,
		service_name   TEXT NOT NULL DEFAULT '',
		service_price  NUMERIC(10,2) NOT NULL DEFAULT 0,
		promo_applied  BOOLEAN NOT NULL DEFAULT FALSE,
		review_id      TEXT,
		cancelled_at   TIMESTAMPTZ,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_client ON bookings (client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_salon ON bookings (salon_id, scheduled_at)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id          TEXT PRIMARY KEY,
		sender_id   TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		text        TEXT NOT NULL,
		sent_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_read     BOOLEAN NOT NULL DEFAULT FALSE,
		booking_id  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages (sender_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_receiver ON messages (receiver_id)`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id          TEXT PRIMARY KEY,
		salon_id    TEXT NOT NULL REFERENCES salons(id),
		booking_id  TEXT NOT NULL UNIQUE,
		client_id   TEXT NOT NULL,
		client_name TEXT NOT NULL,
		rating      INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment     TEXT NOT NULL DEFAULT '',
		is_verified BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		token        TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		email        TEXT NOT NULL DEFAULT '',
		display_name TEXT NOT NULL DEFAULT '',
		role         TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at   TIMESTAMPTZ NOT NULL
	)`,
}

// Apply создает схему БД, если она еще не создана
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: failed to apply statement: %w", err)
		}
	}
	return nil
}
