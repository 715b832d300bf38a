package models

import "gorm.io/gorm"

// FavoriteCharacter links a user to a character they favorited. The
// composite primary key is what makes duplicate favorites fail at the
// storage layer; referential integrity is checked by the handlers, not
// by foreign key constraints.
type FavoriteCharacter struct {
	UserID      uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	CharacterID uint `json:"character_id" gorm:"primaryKey;autoIncrement:false"`
}

func (FavoriteCharacter) TableName() string {
	return "favorite_characters"
}

// FavoritePlanet links a user to a planet they favorited.
type FavoritePlanet struct {
	UserID   uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PlanetID uint `json:"planet_id" gorm:"primaryKey;autoIncrement:false"`
}

func (FavoritePlanet) TableName() string {
	return "favorite_planets"
}

// FavoriteCharacters returns the characters a user has favorited, loaded
// through an explicit join instead of relationship traversal.
func FavoriteCharacters(db *gorm.DB, userID uint) ([]Character, error) {
	var characters []Character
	err := db.
		Joins("JOIN favorite_characters fc ON fc.character_id = characters.id").
		Where("fc.user_id = ?", userID).
		Find(&characters).Error
	return characters, err
}

// FavoritePlanets returns the planets a user has favorited.
func FavoritePlanets(db *gorm.DB, userID uint) ([]Planet, error) {
	var planets []Planet
	err := db.
		Joins("JOIN favorite_planets fp ON fp.planet_id = planets.id").
		Where("fp.user_id = ?", userID).
		Find(&planets).Error
	return planets, err
}

// UsersFavoringCharacter returns the users that favorited a character.
func UsersFavoringCharacter(db *gorm.DB, characterID uint) ([]User, error) {
	var users []User
	err := db.
		Joins("JOIN favorite_characters fc ON fc.user_id = users.id").
		Where("fc.character_id = ?", characterID).
		Find(&users).Error
	return users, err
}

// UsersFavoringPlanet returns the users that favorited a planet.
func UsersFavoringPlanet(db *gorm.DB, planetID uint) ([]User, error) {
	var users []User
	err := db.
		Joins("JOIN favorite_planets fp ON fp.user_id = users.id").
		Where("fp.planet_id = ?", planetID).
		Find(&users).Error
	return users, err
}
