// Package response writes the storefront API's JSON responses.
//
// Successful reads and writes return the record (or array) directly;
// failures return {"error": "<message>"}. Informational endpoints use
// {"message": "<message>"}.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends data with an arbitrary status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, data)
}

// OK sends a 200 response with data.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, data)
}

// Created sends a 201 response with the created record.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, data)
}

// NoContent sends an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"error": message})
}

// Message sends {"message": message} with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"message": message})
}

// ValidationError sends a 400 with field-level error details.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "Validation failed",
		"details": errs,
	})
}
