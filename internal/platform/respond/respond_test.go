package respond

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pet-adoption/internal/apperrors"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		apperrors.ErrInvalidInput:     http.StatusBadRequest,
		apperrors.ErrUnauthorized:     http.StatusForbidden,
		apperrors.ErrNotFound:         http.StatusNotFound,
		apperrors.ErrDuplicateRequest: http.StatusConflict,
		apperrors.ErrConflict:         http.StatusConflict,
		apperrors.ErrBadState:         http.StatusConflict,
		fmt.Errorf("boom"):            http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusFor(err), err.Error())
	}

	wrapped := fmt.Errorf("pets repo: %w", apperrors.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusFor(wrapped))
}

func TestError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, fmt.Errorf("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error\n", rec.Body.String())
}
