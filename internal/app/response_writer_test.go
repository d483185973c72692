package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec)
	assert.Same(t, w, NewResponseWriter(w))
	assert.False(t, w.Written())
	assert.Equal(t, http.StatusOK, w.Status())

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.True(t, w.Written())
	assert.Equal(t, http.StatusAccepted, w.Status())
	assert.Equal(t, int64(5), w.Size())
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Same(t, rec, w.Unwrap())
}

func TestResponseWriter_ImplicitStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec)
	_, _ = w.Write([]byte("x"))
	w.Flush()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, rec.Flushed)

	_, _, err := w.Hijack()
	assert.ErrorIs(t, err, http.ErrNotSupported)
}
