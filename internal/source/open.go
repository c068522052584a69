package source

import (
	"github.com/Sepeciuc/Laborator-6/internal/config"
)

// Open builds the loader selected by cfg. The returned close function
// releases any database connection and is never nil.
func Open(cfg config.Config) (Loader, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case config.SourceJSON, "":
		return NewJSONFile(cfg.DataFile), noop, nil
	case config.SourcePostgres:
		db, err := Connect(DBOptionsFromConfig(cfg))
		if err != nil {
			return nil, noop, NewSourceError(
				ErrorCodeDatabaseUnavailable,
				"Database is unavailable",
				err.Error(),
			)
		}
		return NewPostgres(db, cfg.DBTable), db.Close, nil
	default:
		return nil, noop, NewSourceError(
			ErrorCodeInvalidConfig,
			"Unknown employee source",
			"FIRMA_SOURCE must be json or postgres, got "+cfg.Source,
		)
	}
}
