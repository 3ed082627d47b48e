package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sensors (
			sensor_id	TEXT	NOT NULL,
			type		TEXT	NOT NULL,
			status		TEXT	NOT NULL DEFAULT 'offline',
			location	POINT	NULL,
			thresholds	JSONB	NULL,
			metadata	JSONB	NULL,
			last_seen	timestamp with time zone NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_sensors_unique PRIMARY KEY (sensor_id)
		);

		CREATE TABLE IF NOT EXISTS readings (
			time		timestamp with time zone NOT NULL,
			sensor_id	TEXT	NOT NULL,
			type		TEXT	NOT NULL,
			value		JSONB	NOT NULL,
			unit		TEXT	NULL,
			location	POINT	NULL,
			metadata	JSONB	NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS processed_readings (
			time			timestamp with time zone NOT NULL,
			sensor_id		TEXT	NOT NULL,
			type			TEXT	NOT NULL,
			quality_score	INT		NOT NULL,
			version			TEXT	NOT NULL,
			reading			JSONB	NOT NULL,
			derived			JSONB	NOT NULL,
			transformed		JSONB	NOT NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id	TEXT	NOT NULL,
			sensor_id	TEXT	NOT NULL,
			type		TEXT	NOT NULL,
			severity	TEXT	NOT NULL,
			message		TEXT	NULL,
			observed_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			data		JSONB	NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alerts_unique PRIMARY KEY (alert_id)
		);

		CREATE INDEX IF NOT EXISTS readings_sensor_time_idx ON readings (sensor_id, time);
		CREATE INDEX IF NOT EXISTS processed_sensor_time_idx ON processed_readings (sensor_id, time);
		CREATE INDEX IF NOT EXISTS alerts_sensor_idx ON alerts (sensor_id);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
