package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/pkg/testkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateHashesPassword(t *testing.T) {
	h, db := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodPost, "/api/users", map[string]string{
		"email":    "new@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.NotContains(t, rec.Body.String(), "secret123", "password never serialised")
	assert.NotContains(t, rec.Body.String(), `"password"`)

	var inDB models.User
	require.NoError(t, db.First(&inDB, "email = ?", "new@example.com").Error)
	assert.NotEqual(t, "secret123", inDB.Password, "stored as a hash")
	assert.True(t, strings.HasPrefix(inDB.Password, "$2"), "bcrypt hash")
	assert.Equal(t, "user", inDB.Role, "role defaults to user")
}

func TestUserGetByEmail(t *testing.T) {
	h, db := newTestServer(t)
	seedUser(t, db, "findme@example.com")

	rec := testkit.Do(t, h, http.MethodGet, "/api/users/email/findme@example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	testkit.DecodeJSON(t, rec, &user)
	assert.Equal(t, "findme@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
}

func TestUserGetByUnknownEmail(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodGet, "/api/users/email/nonexistent@example.com", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", testkit.ErrorMessage(t, rec))
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	h, db := newTestServer(t)
	seedUser(t, db, "taken@example.com")

	rec := testkit.Do(t, h, http.MethodPost, "/api/users", map[string]string{
		"email":    "taken@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserUpdateUnknownID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodPut, "/api/users/nonexistent-id", map[string]string{"email": "x@example.com"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", testkit.ErrorMessage(t, rec))
}

func TestUserUpdateEmail(t *testing.T) {
	h, db := newTestServer(t)
	user := seedUser(t, db, "before@example.com")

	rec := testkit.Do(t, h, http.MethodPut, "/api/users/"+user.ID, map[string]string{"email": "after@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.User
	testkit.DecodeJSON(t, rec, &updated)
	assert.Equal(t, "after@example.com", updated.Email)
}

func TestUserDelete(t *testing.T) {
	h, db := newTestServer(t)
	user := seedUser(t, db, "doomed@example.com")

	rec := testkit.Do(t, h, http.MethodDelete, "/api/users/"+user.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = testkit.Do(t, h, http.MethodDelete, "/api/users/"+user.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserLogin(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodPost, "/api/users", map[string]string{
		"email":    "login@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = testkit.Do(t, h, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "login@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	testkit.DecodeJSON(t, rec, &body)
	assert.NotEmpty(t, body["token"])
}

func TestUserLoginWrongPassword(t *testing.T) {
	h, _ := newTestServer(t)

	rec := testkit.Do(t, h, http.MethodPost, "/api/users", map[string]string{
		"email":    "locked@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = testkit.Do(t, h, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "locked@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", testkit.ErrorMessage(t, rec))
}
