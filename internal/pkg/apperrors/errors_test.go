package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("product", "p99")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "p99")
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestPersistence(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("save", cause)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
}

func TestHTTPStatus_PlainErrors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidInput))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
