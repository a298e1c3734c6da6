package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name      TEXT        NOT NULL,
  last_name       TEXT        NOT NULL,
  email           TEXT        NOT NULL UNIQUE,
  phone           TEXT        NOT NULL DEFAULT '',
  location        TEXT        NOT NULL DEFAULT '',
  profile_picture TEXT        NOT NULL DEFAULT '',
  password_hash   TEXT        NOT NULL,
  is_active       BOOLEAN     NOT NULL DEFAULT FALSE,
  is_staff        BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_otps",
		SQL: `CREATE TABLE IF NOT EXISTS otps (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  code_hash  TEXT        NOT NULL,
  otp_type   TEXT        NOT NULL CHECK (otp_type IN ('signup', 'reset_password')),
  is_used    BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_otps_lookup",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_otps_lookup ON otps (user_id, otp_type, is_used, created_at DESC);`,
	},
	{
		Name: "create_table_pets",
		SQL: `CREATE TABLE IF NOT EXISTS pets (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  owner_id     UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  pet_name     TEXT        NOT NULL,
  pet_type     TEXT        NOT NULL,
  pet_color    TEXT        NOT NULL,
  pet_gender   TEXT        NOT NULL,
  pet_birthday DATE,
  pet_photo    TEXT        NOT NULL DEFAULT '',
  qr_token     UUID        NOT NULL UNIQUE,
  qr_url       TEXT        NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_pets_owner",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets (owner_id);`,
	},
	{
		Name: "create_table_adoption_posts",
		SQL: `CREATE TABLE IF NOT EXISTS adoption_posts (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  pet_id        UUID        NOT NULL UNIQUE REFERENCES pets (id) ON DELETE CASCADE,
  owner_message TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_mating_posts",
		SQL: `CREATE TABLE IF NOT EXISTS mating_posts (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  pet_id        UUID        NOT NULL UNIQUE REFERENCES pets (id) ON DELETE CASCADE,
  owner_message TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_interaction_requests",
		SQL: `CREATE TABLE IF NOT EXISTS interaction_requests (
  id                     UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  sender_id              UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  receiver_id            UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  pet_id                 UUID        NOT NULL REFERENCES pets (id) ON DELETE CASCADE,
  request_type           TEXT        NOT NULL CHECK (request_type IN ('Mate', 'Adoption')),
  message                TEXT        NOT NULL DEFAULT '',
  attached_file          TEXT        NOT NULL DEFAULT '',
  status                 TEXT        NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Accepted', 'Rejected')),
  owner_response_message TEXT        NOT NULL DEFAULT '',
  created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_interaction_requests_receiver",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_interaction_requests_receiver ON interaction_requests (receiver_id, created_at DESC);`,
	},
	{
		Name: "create_table_appointments",
		SQL: `CREATE TABLE IF NOT EXISTS appointments (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  pet_id     UUID        NOT NULL REFERENCES pets (id) ON DELETE CASCADE,
  service    TEXT        NOT NULL,
  date       DATE        NOT NULL,
  time       TEXT        NOT NULL,
  provider   TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_vaccinations",
		SQL: `CREATE TABLE IF NOT EXISTS vaccinations (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  pet_id           UUID        NOT NULL REFERENCES pets (id) ON DELETE CASCADE,
  vacc_name        TEXT        NOT NULL,
  vacc_date        DATE        NOT NULL,
  vacc_certificate TEXT        NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_moods",
		SQL: `CREATE TABLE IF NOT EXISTS moods (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  pet_id     UUID        NOT NULL REFERENCES pets (id) ON DELETE CASCADE,
  mood       SMALLINT    NOT NULL CHECK (mood BETWEEN 1 AND 5),
  notes      TEXT        NOT NULL DEFAULT '',
  date       DATE        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_moods_pet_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_moods_pet_date ON moods (pet_id, date);`,
	},
	{
		Name: "create_table_alerts",
		SQL: `CREATE TABLE IF NOT EXISTS alerts (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  owner_id   UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  name       TEXT        NOT NULL,
  time       TEXT        NOT NULL,
  is_active  BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_alerts_time",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_alerts_time ON alerts (time) WHERE is_active;`,
	},
	{
		Name: "create_table_activities",
		SQL: `CREATE TABLE IF NOT EXISTS activities (
  id               UUID    PRIMARY KEY DEFAULT uuid_generate_v4(),
  name             TEXT    NOT NULL,
  system_name      TEXT    NOT NULL UNIQUE,
  points_value     INTEGER NOT NULL CHECK (points_value >= 0),
  interaction_type TEXT    NOT NULL CHECK (interaction_type IN ('EARN', 'REDEEM')),
  is_once_only     BOOLEAN NOT NULL DEFAULT FALSE
);`,
	},
	{
		Name: "create_table_wallets",
		SQL: `CREATE TABLE IF NOT EXISTS wallets (
  user_id      UUID        PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE,
  total_points INTEGER     NOT NULL DEFAULT 0 CHECK (total_points >= 0),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_points_transactions",
		SQL: `CREATE TABLE IF NOT EXISTS points_transactions (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id          UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  activity_id      UUID        NOT NULL REFERENCES activities (id),
  points_change    INTEGER     NOT NULL,
  transaction_type TEXT        NOT NULL CHECK (transaction_type IN ('EARN', 'REDEEM')),
  reference        TEXT        NOT NULL DEFAULT '',
  description      TEXT        NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_points_transactions_user",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_points_transactions_user ON points_transactions (user_id, created_at DESC);`,
	},
	{
		Name: "create_unique_index_points_transactions_reference",
		SQL: `CREATE UNIQUE INDEX IF NOT EXISTS uq_points_transactions_reference
  ON points_transactions (user_id, activity_id, reference) WHERE reference <> '';`,
	},
	{
		Name: "create_table_reward_coupons",
		SQL: `CREATE TABLE IF NOT EXISTS reward_coupons (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id     UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  activity_id UUID        NOT NULL REFERENCES activities (id),
  code        TEXT        NOT NULL UNIQUE,
  is_used     BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_push_tokens",
		SQL: `CREATE TABLE IF NOT EXISTS push_tokens (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  token      TEXT        NOT NULL UNIQUE,
  platform   TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_uploads",
		SQL: `CREATE TABLE IF NOT EXISTS uploads (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  owner_id     UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_uploads_owner",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_uploads_owner ON uploads (owner_id, created_at DESC);`,
	},
	{
		Name: "seed_activities",
		SQL: `INSERT INTO activities (name, system_name, points_value, interaction_type, is_once_only) VALUES
  ('Complete your profile',      'PROFILE_COMPLETE',  50,  'EARN',   TRUE),
  ('Post a pet for adoption',    'ADOPTION_POST',     100, 'EARN',   FALSE),
  ('Post a pet for mating',      'MATING_POST',       80,  'EARN',   FALSE),
  ('Adoption request approved',  'ADOPTION_APPROVED', 200, 'EARN',   FALSE),
  ('Mating request approved',    'MATING_APPROVED',   100, 'EARN',   FALSE),
  ('Free grooming session',      'FREE_GROOMING',     300, 'REDEEM', FALSE),
  ('Vet visit discount',         'VET_DISCOUNT',      500, 'REDEEM', FALSE)
ON CONFLICT (system_name) DO NOTHING;`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("event", "db_migration_check"), zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("event", "db_migration_failed"),
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.String("event", "db_migration_skip"),
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("event", "db_migration_start"), zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("event", "db_migration_failed"),
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("event", "db_migration_step"),
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("event", "db_migration_success"),
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
