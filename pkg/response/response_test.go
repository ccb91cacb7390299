package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/singitronic/storefront/pkg/response"
	"github.com/stretchr/testify/assert"
)

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	response.OK(rec, map[string]string{"name": "x"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"x"}`, rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, http.StatusNotFound, "Product not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Message(rec, http.StatusOK, "done")
	assert.JSONEq(t, `{"message":"done"}`, rec.Body.String())
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	response.NoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.ValidationError(rec, map[string]string{"name": "The name field is required."})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
	assert.Contains(t, rec.Body.String(), "name")
}
