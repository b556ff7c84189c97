//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"laundromat-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("row locked")

	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "marked conflict", err: errs.Mark(base, errs.ErrConflict), want: errs.KindConflict},
		{name: "wrapped after mark", err: errs.Wrap(errs.Mark(base, errs.ErrInsufficientBalance), "create contract"), want: errs.KindInsufficientBalance},
		{name: "sentinel itself", err: errs.ErrForbidden, want: errs.KindForbidden},
		{name: "unmarked error", err: base, want: errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "context")

	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
