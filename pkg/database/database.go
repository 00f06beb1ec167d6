package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver       string        `envconfig:"DB_DRIVER"`
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	Username     string        `envconfig:"DB_USER" default:"postgres"`
	Password     string        `envconfig:"DB_PASSWORD"`
	NameDB       string        `envconfig:"DB_NAME" default:"tracklab"`
	SSLMode      string        `envconfig:"DB_SSLMODE" default:"disable"`
	Path         string        `envconfig:"DB_PATH" default:"tracklab.db"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	ConnLifetime time.Duration `envconfig:"DB_CONN_LIFETIME" default:"30m"`
}

// migrateMu guards goose's package-level base FS and dialect.
var migrateMu sync.Mutex

// NewDB opens the configured store, checks it is reachable and applies the
// embedded migrations from the directory named after the driver.
func NewDB(ctx context.Context, cfg *DB, migrations fs.FS) (*sqlx.DB, error) {
	var (
		db      *sqlx.DB
		err     error
		dialect string
	)
	switch cfg.Driver {
	case DriverPostgres:
		db, err = sqlx.Open("pgx", cfg.postgresDSN())
		dialect = "postgres"
	case DriverSQLite, "":
		db, err = sqlx.Open("sqlite", cfg.sqliteDSN())
		dialect = "sqlite3"
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}

	if dialect == "sqlite3" {
		// single writer; transactions must not be interleaved on one file
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns / 2)
		db.SetConnMaxLifetime(cfg.ConnLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping")
	}

	if migrations != nil {
		if err := migrate(db.DB, migrations, dialect, migrationDir(dialect)); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "migrate")
		}
	}
	return db, nil
}

func migrate(db *sql.DB, migrations fs.FS, dialect, dir string) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.Up(db, dir)
}

func migrationDir(dialect string) string {
	if dialect == "postgres" {
		return DriverPostgres
	}
	return DriverSQLite
}

func (cfg *DB) postgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.NameDB,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

func (cfg *DB) sqliteDSN() string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + cfg.Path + "?" + q.Encode()
}
