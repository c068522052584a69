package source

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/Sepeciuc/Laborator-6/internal/config"
)

// The report runs a single query, so the pool stays small
const (
	maxOpenConnections = 2
	maxIdleConnections = 1
	connMaxLifetime    = 10 * time.Minute
)

// DBOptions are the PostgreSQL connection settings
type DBOptions struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DBOptionsFromConfig extracts the database settings from cfg
func DBOptionsFromConfig(cfg config.Config) DBOptions {
	return DBOptions{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
	}
}

// ConnectionString renders the options as a lib/pq keyword/value string.
// statement_timeout matches QueryTimeout on the server side.
func (o DBOptions) ConnectionString() string {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable statement_timeout=%d",
		o.Host, o.Port, o.User, o.Name, QueryTimeout.Milliseconds())

	if o.Password != "" {
		connStr += fmt.Sprintf(" password=%s", o.Password)
	}

	return connStr
}

// Connect opens a pooled connection and pings it. The caller closes the
// returned pool.
func Connect(opts DBOptions) (*sql.DB, error) {
	db, err := sql.Open("postgres", opts.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConnections)
	db.SetMaxIdleConns(maxIdleConnections)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s:%d: %w", opts.Host, opts.Port, err)
	}

	return db, nil
}
