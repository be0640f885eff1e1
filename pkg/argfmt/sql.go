package argfmt

import (
	"fmt"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/jmoiron/sqlx"
	argfmtErrors "github.com/mgreer/argfmt/pkg/errors"
	"github.com/mgreer/argfmt/pkg/types/arg"
	"strings"
)

// DSN is a database connection target split into the driver to open and the
// source string to pass it.
type DSN struct {
	Driver string
	Source string
}

// ParseDSN splits a "driver://source" string. Postgres keeps the full URL as
// its source and sqlite3 is normalised to the sqlite driver.
func ParseDSN(s string) (DSN, error) {
	idx := strings.Index(s, "://")
	if idx <= 0 {
		return DSN{}, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: no driver scheme in %q", argfmtErrors.ErrMalformedDSN, s),
		)
	}

	driver := s[:idx]
	source := s[idx+len("://"):]
	if source == "" {
		return DSN{}, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: empty source in %q", argfmtErrors.ErrMalformedDSN, s),
		)
	}

	switch driver {
	case "postgres", "postgresql":
		return DSN{Driver: "postgres", Source: s}, nil
	case "sqlite", "sqlite3":
		return DSN{Driver: "sqlite", Source: source}, nil
	default:
		return DSN{Driver: driver, Source: source}, nil
	}
}

// OpenDB opens the database named by the String argument's value, which must
// hold a "driver://source" string. The caller owns the returned handle.
func (a *Args) OpenDB(name string) (*sqlx.DB, error) {
	v := a.Lookup(name)
	if v == nil || v.Kind != arg.String {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: no String argument %s", argfmtErrors.ErrUnknownOption, name),
		)
	}

	s, _ := v.Value.Str()
	if s == "" {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %s has no value", argfmtErrors.ErrMissingValue, name),
		)
	}

	dsn, err := ParseDSN(s)
	if err != nil {
		return nil, motmedelErrors.New(fmt.Errorf("parse dsn: %w", err), s)
	}

	db, err := sqlx.Open(dsn.Driver, dsn.Source)
	if err != nil {
		return nil, motmedelErrors.New(fmt.Errorf("sqlx open: %w", err), dsn.Driver)
	}

	return db, nil
}
