package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKind(t *testing.T) {
	err := NewConflictError("email already in use")

	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("boom"), KindConflict))
}

func TestIsKind_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating user: %w", NewNotFoundError("no user with ID 7"))

	assert.True(t, IsKind(err, KindNotFound))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFoundError("x"), http.StatusNotFound},
		{"conflict", NewConflictError("x"), http.StatusConflict},
		{"bad request", NewBadRequestError("x"), http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("x"), http.StatusUnauthorized},
		{"untagged", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
