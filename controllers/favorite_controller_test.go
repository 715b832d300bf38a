package controllers_test

import (
	"net/http"
	"testing"

	"github.com/4GeeksAcademy/tutpic-starwars-model/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Email:    "luke@rebellion.org",
		Username: "luke",
		Password: "not-a-real-hash",
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedPlanet(t *testing.T, db *gorm.DB) models.Planet {
	t.Helper()
	planet := models.Planet{
		Gravity:        "1",
		Population:     200000,
		Diameter:       10465,
		Name:           "Tatooine",
		Climate:        "arid",
		Terrain:        "desert",
		RotationPeriod: 23,
	}
	if err := db.Create(&planet).Error; err != nil {
		t.Fatalf("failed to seed planet: %v", err)
	}
	return planet
}

func seedCharacter(t *testing.T, db *gorm.DB) models.Character {
	t.Helper()
	character := models.Character{
		Name:      "Chewbacca",
		Age:       200,
		Gender:    "male",
		Weight:    112,
		SkinColor: "unknown",
		HairColor: "brown",
		EyeColor:  "blue",
	}
	if err := db.Create(&character).Error; err != nil {
		t.Fatalf("failed to seed character: %v", err)
	}
	return character
}

func TestAddFavoritePlanetTwice(t *testing.T) {
	r, db := setupAPI(t)
	seedUser(t, db)
	seedPlanet(t, db)

	w := doRequest(r, "POST", "/users/1/planets/1", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The second insert hits the composite primary key and must fail,
	// not silently succeed.
	w = doRequest(r, "POST", "/users/1/planets/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.FavoritePlanet{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddFavoritePlanetMissingEntities(t *testing.T) {
	r, db := setupAPI(t)
	seedUser(t, db)

	w := doRequest(r, "POST", "/users/1/planets/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, "POST", "/users/99/planets/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFavoritePlanet(t *testing.T) {
	r, db := setupAPI(t)
	seedUser(t, db)
	seedPlanet(t, db)

	w := doRequest(r, "DELETE", "/users/1/planets/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "removing a never-favorited planet should fail")

	doRequest(r, "POST", "/users/1/planets/1", nil)

	w = doRequest(r, "DELETE", "/users/1/planets/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second removal in a row: the pair is gone, so this is a 400 again.
	w = doRequest(r, "DELETE", "/users/1/planets/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFavoritePlanetMissingEntities(t *testing.T) {
	r, db := setupAPI(t)
	seedUser(t, db)

	w := doRequest(r, "DELETE", "/users/1/planets/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddAndRemoveFavoriteCharacter(t *testing.T) {
	r, db := setupAPI(t)
	seedUser(t, db)
	seedCharacter(t, db)

	w := doRequest(r, "POST", "/users/1/people/1", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, "POST", "/users/1/people/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(r, "DELETE", "/users/1/people/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "DELETE", "/users/1/people/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddFavoriteCharacterMissingEntities(t *testing.T) {
	r, _ := setupAPI(t)

	w := doRequest(r, "POST", "/users/1/people/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Full walkthrough: register a user, create Tatooine, favorite it and
// read the favorites back.
func TestFavoritesScenario(t *testing.T) {
	r, _ := setupAPI(t)

	w := doRequest(r, "POST", "/users", map[string]string{
		"email": "a@x.com", "username": "a", "password": "p",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, float64(1), user["id"])

	w = doRequest(r, "POST", "/planets", map[string]interface{}{
		"name":            "Tatooine",
		"gravity":         "1",
		"population":      1,
		"diameter":        1,
		"climate":         "arid",
		"terrain":         "desert",
		"rotation_period": 23,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	planet := decodeBody(t, w)["planet"].(map[string]interface{})
	assert.Equal(t, float64(1), planet["id"])

	w = doRequest(r, "POST", "/users/1/planets/1", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, "GET", "/users/favorites/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	favPlanets := body["favorite_planets"].([]interface{})
	favCharacters := body["favorite_characters"].([]interface{})
	assert.Len(t, favPlanets, 1)
	assert.Empty(t, favCharacters)

	tatooine := favPlanets[0].(map[string]interface{})
	assert.Equal(t, "Tatooine", tatooine["name"])
	assert.Equal(t, "desert", tatooine["terrain"])
}
