package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	sentinel := NotFound("archive not found")

	assert.Equal(t, KindNotFound, KindOf(sentinel))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("lookup: %w", sentinel)))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(Internal("store failed", errors.New("conn reset"))))
}

func TestWrap(t *testing.T) {
	sentinel := Conflict("phone number already registered")

	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Same(t, sentinel, Wrap(sentinel, "ignored"))

	raw := errors.New("conn reset")
	wrapped := Wrap(raw, "failed to load archive")
	assert.Equal(t, KindInternal, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, raw)
	assert.Equal(t, "failed to load archive: conn reset", wrapped.Error())
}

func TestPublicMessage_HidesInternalDetails(t *testing.T) {
	assert.Equal(t, "internal server error", PublicMessage(Internal("insert profile", errors.New("pq: secret detail"))))
	assert.Equal(t, "internal server error", PublicMessage(errors.New("raw")))
	assert.Equal(t, "no fields to update", PublicMessage(Validation("no fields to update")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindConflict:     http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindNotFound:     http.StatusNotFound,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), kind)
	}
}
