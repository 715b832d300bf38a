package models

type Character struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"type:varchar(50);not null"`
	Age       int    `json:"age"`
	Gender    string `json:"gender" gorm:"type:varchar(15)"`
	Weight    int    `json:"weight"`
	SkinColor string `json:"skin_color" gorm:"type:varchar(15)"`
	HairColor string `json:"hair_color" gorm:"type:varchar(15)"`
	EyeColor  string `json:"eye_color" gorm:"type:varchar(15)"`
}

func (Character) TableName() string {
	return "characters"
}

func (ch *Character) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         ch.ID,
		"name":       ch.Name,
		"age":        ch.Age,
		"gender":     ch.Gender,
		"weight":     ch.Weight,
		"skin_color": ch.SkinColor,
		"hair_color": ch.HairColor,
		"eye_color":  ch.EyeColor,
	}
}

// SerializeFavs projects the already-loaded list of users who favorited
// this character (see UsersFavoringCharacter).
func (ch *Character) SerializeFavs(users []User) map[string]interface{} {
	fans := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		fans = append(fans, users[i].Serialize())
	}
	return map[string]interface{}{"user_favorites": fans}
}
