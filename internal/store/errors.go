package store

import "errors"

// Sentinel errors returned by record stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when the record does not exist or is
	// owned by somebody else.
	ErrRecordNotFound = errors.New("record not found or not owned by caller")

	// ErrInvalidRecord is returned when the owner, title, iv or encrypted
	// data is empty.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrRecordNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrUnsupportedDSN is returned by BackendFor and NewStorages for an unknown DSN scheme.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan vault record row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan vault record rows")
)
