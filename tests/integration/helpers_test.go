//go:build integration

package integration

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/redis"
	"github.com/zatekoja/costnavigator/pkg/config"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func testDatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvAsInt("TEST_DB_PORT", 5432),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		Database: getEnv("TEST_DB_NAME", "hospital_costs_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}
}

func newTestPostgresClient(t *testing.T) *postgres.Client {
	t.Helper()

	client, err := postgres.NewClient(context.Background(), testDatabaseConfig(), zerolog.Nop())
	require.NoError(t, err, "Failed to create postgres client")
	return client
}

func maybeTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	cfg := &config.RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnvAsInt("TEST_REDIS_PORT", 6379),
		Password: getEnv("TEST_REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("TEST_REDIS_DB", 0),
	}

	client, err := redis.NewClient(context.Background(), cfg)
	if err != nil {
		t.Logf("Redis unavailable: %v", err)
		return nil
	}
	return client
}

// schema mirrors the tables the adapters read; the loader that fills them in production lives elsewhere
const schema = `
CREATE TABLE IF NOT EXISTS providers (
	id                SERIAL PRIMARY KEY,
	provider_id       TEXT UNIQUE NOT NULL,
	provider_name     TEXT NOT NULL,
	provider_city     TEXT,
	provider_state    TEXT,
	provider_zip_code TEXT,
	latitude          DOUBLE PRECISION,
	longitude         DOUBLE PRECISION
);
CREATE TABLE IF NOT EXISTS drgs (
	code        INTEGER PRIMARY KEY,
	description TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS zip_codes (
	zip       TEXT PRIMARY KEY,
	city      TEXT,
	state     TEXT,
	latitude  DOUBLE PRECISION,
	longitude DOUBLE PRECISION
);
CREATE TABLE IF NOT EXISTS prices (
	id                        SERIAL PRIMARY KEY,
	provider_id               INTEGER NOT NULL REFERENCES providers(id),
	drg_code                  INTEGER NOT NULL REFERENCES drgs(code),
	total_discharges          INTEGER,
	average_covered_charges   NUMERIC(14,2),
	average_total_payments    NUMERIC(14,2),
	average_medicare_payments NUMERIC(14,2)
);
CREATE TABLE IF NOT EXISTS star_ratings (
	id          SERIAL PRIMARY KEY,
	provider_id INTEGER NOT NULL REFERENCES providers(id),
	rating      INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 10),
	source      TEXT
);
`

const fixtures = `
TRUNCATE TABLE star_ratings, prices, providers, drgs, zip_codes RESTART IDENTITY CASCADE;

INSERT INTO zip_codes (zip, city, state, latitude, longitude) VALUES
	('10001', 'New York', 'NY', 40.7506, -73.9972),
	('02134', 'Allston', 'MA', 42.3539, -71.1337),
	('99999', NULL, NULL, NULL, NULL);

INSERT INTO drgs (code, description) VALUES
	(291, 'HEART FAILURE & SHOCK W MCC'),
	(292, 'HEART FAILURE & SHOCK W CC'),
	(470, 'MAJOR JOINT REPLACEMENT OR REATTACHMENT OF LOWER EXTREMITY W/O MCC');

INSERT INTO providers (provider_id, provider_name, provider_city, provider_state, provider_zip_code, latitude, longitude) VALUES
	('330001', 'Chelsea General',   'New York', 'NY', '10001', 40.7465, -74.0014),
	('330002', 'Harlem Memorial',   'New York', 'NY', '10037', 40.8136, -73.9400),
	('330003', 'Newark Community',  'Newark',   'NJ', '07102', 40.7357, -74.1724),
	('220001', 'Allston Hospital',  'Boston',   'MA', '02134', 42.3550, -71.1320),
	('330004', 'Unmapped Hospital', 'New York', 'NY', '10001', NULL, NULL);

INSERT INTO prices (provider_id, drg_code, total_discharges, average_covered_charges, average_total_payments, average_medicare_payments) VALUES
	(1, 470, 120, 84000.50, 21000.00, 18000.00),
	(2, 470,  80, 52000.00, 19000.00, 16500.00),
	(3, 470,  40, NULL,     17000.00, 15000.00),
	(4, 470,  60, 61000.00, 20000.00, 17000.00),
	(5, 470,  10, 10.00,    10.00,    10.00),
	(1, 291,  30, 45000.00, 12000.00, 11000.00);

INSERT INTO star_ratings (provider_id, rating, source) VALUES
	(1, 9, 'mock'), (1, 8, 'mock'),
	(2, 6, 'mock'),
	(4, 10, 'mock');
`
