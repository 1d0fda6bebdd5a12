package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when a profile has no stored password
	// digest yet.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrUnsupportedDriver is returned when the configured database driver is
	// neither sqlite nor postgres.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. Together they form the storage error class reported by
// [IsStorageError].
var (
	// ErrConnecting is returned when the database cannot be opened or pinged.
	ErrConnecting = errors.New("error connecting to database")

	// ErrMigrating is returned when the schema cannot be created.
	ErrMigrating = errors.New("error creating database schema")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared or plain
	// DML statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a result set fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to iterate rows")
)

var storageErrors = []error{
	ErrConnecting,
	ErrMigrating,
	ErrBuildingSQLQuery,
	ErrExecutingQuery,
	ErrBeginningTransaction,
	ErrCommitingTransaction,
	ErrPreparingStatement,
	ErrExecutingStatement,
	ErrScanningRow,
	ErrScanningRows,
}

// IsStorageError reports whether err originates from the persistence layer
// failing, as opposed to a domain condition such as a missing credential.
func IsStorageError(err error) bool {
	for _, target := range storageErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
