package controllers_test

import (
	"net/http"
	"testing"

	"github.com/4GeeksAcademy/tutpic-starwars-model/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndGetUser(t *testing.T) {
	r, _ := setupAPI(t)

	w := doRequest(r, "POST", "/users", map[string]string{
		"email":    "luke@rebellion.org",
		"username": "luke",
		"password": "bluemilk",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]interface{})
	assert.True(t, ok, "response should contain a user object")
	assert.Equal(t, "luke@rebellion.org", user["email"])
	assert.Equal(t, "luke", user["username"])
	assert.NotContains(t, user, "password")
	assert.Equal(t, float64(1), user["id"])

	w = doRequest(r, "GET", "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	user = body["user"].(map[string]interface{})
	assert.Equal(t, "luke@rebellion.org", user["email"])
	assert.Equal(t, "luke", user["username"])
	assert.NotContains(t, user, "password")
}

func TestCreateUserMissingFields(t *testing.T) {
	r, db := setupAPI(t)

	cases := []map[string]string{
		{"username": "luke", "password": "bluemilk"},
		{"email": "luke@rebellion.org", "password": "bluemilk"},
		{"email": "luke@rebellion.org", "username": "luke"},
		{"email": "", "username": "luke", "password": "bluemilk"},
	}
	for _, payload := range cases {
		w := doRequest(r, "POST", "/users", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count, "no rows should be created on validation failure")
}

func TestCreateUserStoresHashedPassword(t *testing.T) {
	r, db := setupAPI(t)

	w := doRequest(r, "POST", "/users", map[string]string{
		"email":    "leia@rebellion.org",
		"username": "leia",
		"password": "alderaan",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.First(&user, 1).Error)
	assert.NotEqual(t, "alderaan", user.Password)
	assert.NotEmpty(t, user.Password)
	assert.True(t, user.IsActive)
}

func TestCreateUserDuplicate(t *testing.T) {
	r, _ := setupAPI(t)

	payload := map[string]string{
		"email":    "han@rebellion.org",
		"username": "han",
		"password": "falcon",
	}
	w := doRequest(r, "POST", "/users", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, "POST", "/users", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUserNotFound(t *testing.T) {
	r, _ := setupAPI(t)

	w := doRequest(r, "GET", "/users/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.NotContains(t, body, "user")
}

func TestListUsers(t *testing.T) {
	r, _ := setupAPI(t)

	w := doRequest(r, "GET", "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, []interface{}{}, body["users"])

	doRequest(r, "POST", "/users", map[string]string{
		"email": "rey@jakku.net", "username": "rey", "password": "bb8",
	})

	w = doRequest(r, "GET", "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	users := body["users"].([]interface{})
	assert.Len(t, users, 1)
}

func TestGetUserFavoritesUnknownUserReturns400(t *testing.T) {
	r, _ := setupAPI(t)

	// This endpoint answers 400 for an unknown user, unlike the 404 used
	// by the rest of the API.
	w := doRequest(r, "GET", "/users/favorites/9", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
