package models

type Planet struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Gravity        string `json:"gravity" gorm:"type:varchar(20)"`
	Population     int64  `json:"population"`
	Diameter       int    `json:"diameter"`
	Name           string `json:"name" gorm:"type:varchar(30)"`
	Climate        string `json:"climate" gorm:"type:varchar(15)"`
	Terrain        string `json:"terrain" gorm:"type:varchar(15)"`
	RotationPeriod int    `json:"rotation_period"`
}

func (Planet) TableName() string {
	return "planets"
}

func (p *Planet) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":              p.ID,
		"gravity":         p.Gravity,
		"population":      p.Population,
		"diameter":        p.Diameter,
		"name":            p.Name,
		"climate":         p.Climate,
		"terrain":         p.Terrain,
		"rotation_period": p.RotationPeriod,
	}
}

// SerializeFavs projects the already-loaded list of users who favorited
// this planet (see UsersFavoringPlanet).
func (p *Planet) SerializeFavs(users []User) map[string]interface{} {
	fans := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		fans = append(fans, users[i].Serialize())
	}
	return map[string]interface{}{"user_favorites": fans}
}
