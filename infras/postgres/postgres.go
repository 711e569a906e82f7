package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"roomops/config"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	defaultMaxOpenConnection = 10
	defaultMaxIdleConnection = 10
	connMaxLifetime          = 30 * time.Minute
)

// Connection splits reads from writes. Checkout transactions always run on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func (e endpoint) descriptor() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.username,
		e.password,
		net.JoinHostPort(e.host, e.port),
		e.dbName,
		e.sslMode,
	)
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	read := endpoint{
		name: "read", username: pg.Read.Username, password: pg.Read.Password, host: pg.Read.Host,
		port: pg.Read.Port, dbName: pg.Prefix + pg.Read.Name, sslMode: pg.Read.SSLMode,
	}
	write := endpoint{
		name: "write", username: pg.Write.Username, password: pg.Write.Password, host: pg.Write.Host,
		port: pg.Write.Port, dbName: pg.Prefix + pg.Write.Name, sslMode: pg.Write.SSLMode,
	}

	return &Connection{
		Read:  connect(config, read),
		Write: connect(config, write),
	}
}

// connect retries with a constant wait and aborts startup when the database never answers.
func connect(config *config.Config, target endpoint) *sqlx.DB {
	pg := config.DB.Postgres
	logger := log.With().Str("name", target.name).Str("host", target.host).Str("port", target.port).Str("dbName", target.dbName).Logger()

	db, err := backoff.Retry(context.Background(), func() (*sqlx.DB, error) {
		return sqlx.Connect("postgres", target.descriptor())
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Duration(pg.RetryWaitTime)*time.Second)),
		backoff.WithMaxTries(uint(max(1, pg.MaxRetry))),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Error().Err(err).Dur("retryIn", next).Msg("Failed connecting to database, retrying")
		}),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Giving up connecting to database")
	}

	db.SetMaxOpenConns(orDefault(pg.MaxOpenConns, defaultMaxOpenConnection))
	db.SetMaxIdleConns(orDefault(pg.MaxIdleConns, defaultMaxIdleConnection))
	db.SetConnMaxLifetime(connMaxLifetime)

	logger.Info().Msg("Connected to database")

	return db
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}

	return value
}
