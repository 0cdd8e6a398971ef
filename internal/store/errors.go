package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT or UPDATE of a user
	// collides with the unique index on the email column.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when no user row matches the lookup key.
	ErrUserNotFound = errors.New("user was not found")

	// ErrCategoryNotFound is returned when no category row matches the id.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrCategorySlugExists is returned when a category slug is already taken.
	ErrCategorySlugExists = errors.New("category slug already exists")

	// ErrCategoryReferenceNotFound is returned when a foreign key points at a
	// category that does not exist (a parent category or the category of an
	// attribute).
	ErrCategoryReferenceNotFound = errors.New("referenced category was not found")

	// ErrAttributeNotFound is returned when no attribute row matches the id.
	ErrAttributeNotFound = errors.New("attribute was not found")
)

// Low-level database operation errors. These are wrapped together with the
// driver error when a SQL-level operation fails before any domain mapping can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
