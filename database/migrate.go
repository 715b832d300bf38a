package database

import (
	"github.com/4GeeksAcademy/tutpic-starwars-model/models"

	"gorm.io/gorm"
)

// Migrate creates the four entity tables and the two association tables.
// The association tables carry only their composite primary key; there
// are no foreign key constraints, handlers check referential integrity
// before inserting.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Character{},
		&models.Planet{},
		&models.FavoriteCharacter{},
		&models.FavoritePlanet{},
	)
}
