package postgres

//nolint:revive
import (
	"errors"
	"marquee/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads from writes. Repositories read through Read and write,
// including every transaction, through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// endpoint is one side of the read/write pair.
type endpoint struct {
	name     string
	host     string
	port     string
	username string
	password string
	database string
	sslMode  string
	timezone string
}

func (e endpoint) dsn() string {
	query := url.Values{}
	query.Set("sslmode", e.sslMode)

	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     e.database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func New(config *config.Config) *Connection {
	postgres := config.DB.Postgres
	read, write := postgres.Read, postgres.Write

	return &Connection{
		Read: connect(endpoint{
			name: "read", host: read.Host, port: read.Port, username: read.Username, password: read.Password,
			database: postgres.Prefix + read.Name, sslMode: read.SSLMode, timezone: read.Timezone,
		}, postgres.MaxRetry, postgres.RetryWaitTime),
		Write: connect(endpoint{
			name: "write", host: write.Host, port: write.Port, username: write.Username, password: write.Password,
			database: postgres.Prefix + write.Name, sslMode: write.SSLMode, timezone: write.Timezone,
		}, postgres.MaxRetry, postgres.RetryWaitTime),
	}
}

// Close releases both pools. When read and write share a pool it is closed once.
func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

// connect dials until the database answers, at least once and at most maxRetry
// times. Startup aborts when every attempt fails.
func connect(target endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	attempts := max(1, maxRetry)

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect("postgres", target.dsn())
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			log.Info().
				Str("name", target.name).
				Str("host", target.host).
				Str("port", target.port).
				Str("dbName", target.database).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", target.name).
			Str("host", target.host).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	log.Fatal().Err(err).Str("name", target.name).Msg("Giving up on database connection")

	return nil
}
