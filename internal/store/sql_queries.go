package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// setIf adds "column = *value" to the update when value is non-nil.
func setIf[T any](builder sq.UpdateBuilder, column string, value *T) sq.UpdateBuilder {
	if value == nil {
		return builder
	}
	return builder.Set(column, *value)
}
