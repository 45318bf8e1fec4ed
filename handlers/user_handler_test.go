package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"building_service/domain"
	errs "building_service/errors"
)

func userPayload() map[string]interface{} {
	return map[string]interface{}{
		"email": "mina@example.com",
		"name":  "Mina Rahman",
	}
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv()

	rec := postJSON(t, env, "/users", userPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp.Message)
	assert.False(t, resp.UserID.IsZero())

	require.Len(t, env.users.users, 1)
	assert.False(t, env.users.users[0].CreatedAt.IsZero())
}

func TestCreateUserAlreadyExists(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, http.StatusCreated, postJSON(t, env, "/users", userPayload()).Code)

	rec := postJSON(t, env, "/users", userPayload())
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, errs.UserExists, resp.Error)

	assert.Len(t, env.users.users, 1)
}

func TestCreateUserMissingFields(t *testing.T) {
	for _, field := range []string{"email", "name"} {
		t.Run(field, func(t *testing.T) {
			env := newTestEnv()

			payload := userPayload()
			delete(payload, field)

			rec := postJSON(t, env, "/users", payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, env.users.users)
		})
	}
}

func TestGetAllUsers(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, http.StatusCreated, postJSON(t, env, "/users", userPayload()).Code)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var users []*domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "mina@example.com", users[0].Email)
}

func checkAdmin(env *testEnv, email, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/users/admin/"+email, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestCheckAdmin(t *testing.T) {
	env := newTestEnv()
	env.users.users = []*domain.User{
		{Email: "boss@example.com", Name: "Boss", Role: domain.RoleAdmin},
		{Email: "mina@example.com", Name: "Mina Rahman"},
	}

	rec := checkAdmin(env, "boss@example.com", signTestToken(map[string]string{"email": "boss@example.com"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdminCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Admin)
}

func TestCheckAdminNonAdminUser(t *testing.T) {
	env := newTestEnv()
	env.users.users = []*domain.User{
		{Email: "mina@example.com", Name: "Mina Rahman"},
	}

	rec := checkAdmin(env, "mina@example.com", signTestToken(map[string]string{"email": "mina@example.com"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdminCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Admin)
}

func TestCheckAdminUnknownEmail(t *testing.T) {
	env := newTestEnv()

	rec := checkAdmin(env, "ghost@example.com", signTestToken(map[string]string{"email": "ghost@example.com"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdminCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Admin)
}

func TestCheckAdminFailsClosedWithoutIdentity(t *testing.T) {
	env := newTestEnv()
	env.users.users = []*domain.User{
		{Email: "boss@example.com", Name: "Boss", Role: domain.RoleAdmin},
	}

	rec := checkAdmin(env, "boss@example.com", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckAdminIdentityMismatch(t *testing.T) {
	env := newTestEnv()
	env.users.users = []*domain.User{
		{Email: "boss@example.com", Name: "Boss", Role: domain.RoleAdmin},
	}

	rec := checkAdmin(env, "boss@example.com", signTestToken(map[string]string{"email": "mina@example.com"}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckAdminInvalidToken(t *testing.T) {
	env := newTestEnv()

	rec := checkAdmin(env, "boss@example.com", "not-a-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
