package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"petcare/internal/config"
)

func petcareDB() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:               "db",
		Port:               "5432",
		User:               "petcare",
		Password:           "s3cret",
		Name:               "petcare",
		SSLMode:            "disable",
		MaxOpenConns:       12,
		MaxIdleConns:       4,
		ConnMaxLifetimeSec: 300,
		ApplicationName:    "petcare-api",
	}
}

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.DatabaseConfig)
		want   string
	}{
		{
			name:   "full config",
			mutate: func(*config.DatabaseConfig) {},
			want:   "postgres://petcare:s3cret@db:5432/petcare?application_name=petcare-api&sslmode=disable",
		},
		{
			name:   "password is escaped",
			mutate: func(c *config.DatabaseConfig) { c.Password = "p@ss/word" },
			want:   "postgres://petcare:p%40ss%2Fword@db:5432/petcare?application_name=petcare-api&sslmode=disable",
		},
		{
			name: "no password, no query",
			mutate: func(c *config.DatabaseConfig) {
				c.Password, c.SSLMode, c.ApplicationName = "", "", ""
			},
			want: "postgres://petcare@db:5432/petcare",
		},
		{
			name:   "sslmode require",
			mutate: func(c *config.DatabaseConfig) { c.ApplicationName, c.SSLMode = "", "require" },
			want:   "postgres://petcare:s3cret@db:5432/petcare?sslmode=require",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := petcareDB()
			tt.mutate(&c)
			got, err := BuildPostgresDSN(c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPostgresDSN_MissingFields(t *testing.T) {
	for field, clear := range map[string]func(c *config.DatabaseConfig){
		"host": func(c *config.DatabaseConfig) { c.Host = "" },
		"port": func(c *config.DatabaseConfig) { c.Port = "" },
		"user": func(c *config.DatabaseConfig) { c.User = "" },
		"name": func(c *config.DatabaseConfig) { c.Name = "" },
	} {
		t.Run(field, func(t *testing.T) {
			c := petcareDB()
			clear(&c)
			_, err := BuildPostgresDSN(c)
			assert.Error(t, err)
		})
	}
}

// stubOpen makes NewPostgres use db instead of a real driver.
func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
		return db, err
	}
	t.Cleanup(func() { sqlOpen = orig })
}

func TestNewPostgres(t *testing.T) {
	t.Run("connects and applies pool settings", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)
		mock.ExpectPing()

		core, logs := observer.New(zap.InfoLevel)
		got, err := NewPostgres(petcareDB(), zap.New(core))
		require.NoError(t, err)

		assert.Equal(t, 12, got.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())

		entries := logs.FilterMessage("database connected").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "petcare", entries[0].ContextMap()["db_name"])
	})

	t.Run("open error", func(t *testing.T) {
		stubOpen(t, nil, errors.New("open error"))

		got, err := NewPostgres(petcareDB(), zap.NewNop())
		assert.ErrorContains(t, err, "sql open: open error")
		assert.Nil(t, got)
	})

	t.Run("ping error closes the pool", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)
		mock.ExpectPing().WillReturnError(errors.New("ping failed"))
		mock.ExpectClose()

		got, err := NewPostgres(petcareDB(), zap.NewNop())
		assert.ErrorContains(t, err, "db ping: ping failed")
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid config", func(t *testing.T) {
		got, err := NewPostgres(config.DatabaseConfig{}, nil)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
