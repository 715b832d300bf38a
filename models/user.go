package models

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Username string `json:"username" gorm:"type:varchar(20);uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

// Serialize returns the client-facing view of a user. The password is
// never included, hashed or not.
func (u *User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}

// SerializeFavs projects already-loaded favorite collections. It runs no
// queries itself; callers load the slices via FavoriteCharacters and
// FavoritePlanets first.
func (u *User) SerializeFavs(characters []Character, planets []Planet) map[string]interface{} {
	favCharacters := make([]map[string]interface{}, 0, len(characters))
	for i := range characters {
		favCharacters = append(favCharacters, characters[i].Serialize())
	}
	favPlanets := make([]map[string]interface{}, 0, len(planets))
	for i := range planets {
		favPlanets = append(favPlanets, planets[i].Serialize())
	}
	return map[string]interface{}{
		"favorite_characters": favCharacters,
		"favorite_planets":    favPlanets,
	}
}
