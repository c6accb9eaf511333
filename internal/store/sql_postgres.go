package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/gamegenius/internal/logger"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewConnectPostgres opens a pgx pool for dsn and pings it.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(dialectPostgres, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, storageError("open", "postgres", err, PostgresErrorClassifier{})
	}

	// setup connections
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, storageError("ping", "postgres", err, PostgresErrorClassifier{})
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            dialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: PostgresErrorClassifier{},
		logger:             log,
	}, nil
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError].
func (PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// QuotaExceeded codes:
//   - Class 53: insufficient resources (53000, 53100, 53200), except 53300
//   - Class 54: program limit exceeded (54000)
//
// Unavailable codes:
//   - Class 08: connection exceptions (08000, 08001, 08003, 08004, 08006)
//   - 53300: too many connections
//   - Class 57: cannot connect now, admin/crash shutdown (57P01, 57P02, 57P03)
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.InsufficientResources, // 53000
		pgerrcode.DiskFull,             // 53100
		pgerrcode.OutOfMemory,          // 53200
		pgerrcode.ProgramLimitExceeded: // 54000
		return QuotaExceeded

	case pgerrcode.ConnectionException,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
		pgerrcode.ConnectionFailure,
		pgerrcode.TooManyConnections, // 53300
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return Unavailable
	}

	return Unclassified
}
