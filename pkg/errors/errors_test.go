package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/tripweave/tripweave/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "activity",
			ID:       "2026-01-01__新年參拜",
		}
		assert.Equal(t, "activity with ID 2026-01-01__新年參拜 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("folder", "2026-01-01__東京灣遊船午餐")
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "date",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field date: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("", nil, "bad row")
		assert.Equal(t, "validation failed: bad row", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected node")
	err := pkgerrors.NewParseError("yaml", "trip.yaml", "unexpected node", base)
	assert.Equal(t, "parse error in yaml file trip.yaml: unexpected node", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))

	wrapped := pkgerrors.WrapParse("yaml", "overrides.yaml", base)
	var parseErr *pkgerrors.ParseError
	assert.True(t, errors.As(wrapped, &parseErr))
	assert.Equal(t, "overrides.yaml", parseErr.File)

	assert.Nil(t, pkgerrors.WrapParse("yaml", "x.yaml", nil))
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("read", "data/trip.yaml", base)
	assert.Equal(t, "IO error during read of data/trip.yaml: permission denied", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))

	assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
}

func TestProbeError(t *testing.T) {
	t.Run("with status", func(t *testing.T) {
		err := pkgerrors.NewProbeError("https://example.com/a.pdf", 404, "", "not found", nil)
		assert.Equal(t, "probe failed for https://example.com/a.pdf (status 404): not found", err.Error())
		assert.True(t, pkgerrors.IsUnreachable(err))
	})

	t.Run("wrapped transport error", func(t *testing.T) {
		base := errors.New("connection refused")
		err := pkgerrors.NewProbeError("https://example.com/q.png", 0, "", "request failed", base)
		assert.Equal(t, base, errors.Unwrap(err))
		assert.True(t, pkgerrors.IsUnreachable(fmt.Errorf("probing: %w", err)))
	})
}

func TestSentinelHelpers(t *testing.T) {
	assert.True(t, pkgerrors.IsTimeout(fmt.Errorf("wrap: %w", pkgerrors.ErrTimeout)))
	assert.True(t, pkgerrors.IsCanceled(fmt.Errorf("wrap: %w", pkgerrors.ErrCanceled)))
	assert.False(t, pkgerrors.IsTimeout(errors.New("other")))
}
