package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("name required")))
	assert.Equal(t, KindConflict, KindOf(Conflict("email already in use")))
	assert.Equal(t, KindAuth, KindOf(Auth("invalid credentials")))
	assert.Equal(t, KindInternal, KindOf(Internal(errors.New("boom"))))

	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("register: %w", Conflict("email already in use"))
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestInternal_HidesCauseButUnwraps(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	assert.Equal(t, "internal error", err.Error())
	assert.ErrorIs(t, err, cause)
}
