// Package pgtest provides pgxmock helpers for repository unit tests.
package pgtest

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
)

// NewMock returns a pgxmock pool that is closed when the test ends.
func NewMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

// ExpectationsWereMet fails the test if any expectation was not consumed.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

// AnyArgs returns n pgxmock.AnyArg matchers.
func AnyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
