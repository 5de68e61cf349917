package services_test

import (
	"errors"
	"testing"
	"time"

	"professionals-api/internal/pagination"
	"professionals-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultPage = pagination.PageRequest{Page: 1, PageSize: 15}

var fixedTime = time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// assertFieldError checks err is a validation failure on field.
func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var fe *services.FieldError
	require.True(t, errors.As(err, &fe), "expected a FieldError, got %v", err)
	assert.Equal(t, field, fe.Field)
	assert.ErrorIs(t, err, services.ErrValidation)
}
