package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/tutpic-starwars-model/models"
	"github.com/4GeeksAcademy/tutpic-starwars-model/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// exists counts rows of model with the given id.
func (fc *FavoriteController) exists(model interface{}, id uint) (bool, error) {
	var count int64
	err := fc.db.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// POST /users/:id/planets/:planet_id
func (fc *FavoriteController) AddPlanet(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	planetID, ok := parseIDParam(c, "planet_id")
	if !ok {
		return
	}

	if !fc.requireUserAndTarget(c, userID, &models.Planet{}, planetID, "User or planet does not exist") {
		return
	}

	var existing models.FavoritePlanet
	err := fc.db.Where("user_id = ? AND planet_id = ?", userID, planetID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"msg": "Planet is already a favorite of this user"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "check favorite planet")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to add favorite planet"})
		return
	}

	fav := models.FavoritePlanet{UserID: userID, PlanetID: planetID}
	if err := fc.db.Create(&fav).Error; err != nil {
		// Backstop for the race two concurrent inserts can still lose;
		// the composite primary key decides the winner.
		if isDuplicateErr(err) {
			c.JSON(http.StatusConflict, gin.H{"msg": "Planet is already a favorite of this user"})
			return
		}
		utils.LogError(err, "add favorite planet")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to add favorite planet"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Favorite planet added successfully"})
}

// DELETE /users/:id/planets/:planet_id
func (fc *FavoriteController) RemovePlanet(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	planetID, ok := parseIDParam(c, "planet_id")
	if !ok {
		return
	}

	if !fc.requireUserAndTarget(c, userID, &models.Planet{}, planetID, "User or planet does not exist") {
		return
	}

	var existing models.FavoritePlanet
	err := fc.db.Where("user_id = ? AND planet_id = ?", userID, planetID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "This planet is not a favorite of this user"})
		return
	}
	if err != nil {
		utils.LogError(err, "check favorite planet")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to remove favorite planet"})
		return
	}

	if err := fc.db.Where("user_id = ? AND planet_id = ?", userID, planetID).
		Delete(&models.FavoritePlanet{}).Error; err != nil {
		utils.LogError(err, "remove favorite planet")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to remove favorite planet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Favorite planet removed successfully"})
}

// POST /users/:id/people/:character_id
func (fc *FavoriteController) AddCharacter(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	characterID, ok := parseIDParam(c, "character_id")
	if !ok {
		return
	}

	if !fc.requireUserAndTarget(c, userID, &models.Character{}, characterID, "User or character does not exist") {
		return
	}

	var existing models.FavoriteCharacter
	err := fc.db.Where("user_id = ? AND character_id = ?", userID, characterID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"msg": "Character is already a favorite of this user"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "check favorite character")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to add favorite character"})
		return
	}

	fav := models.FavoriteCharacter{UserID: userID, CharacterID: characterID}
	if err := fc.db.Create(&fav).Error; err != nil {
		if isDuplicateErr(err) {
			c.JSON(http.StatusConflict, gin.H{"msg": "Character is already a favorite of this user"})
			return
		}
		utils.LogError(err, "add favorite character")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to add favorite character"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Favorite character added successfully"})
}

// DELETE /users/:id/people/:character_id
func (fc *FavoriteController) RemoveCharacter(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	characterID, ok := parseIDParam(c, "character_id")
	if !ok {
		return
	}

	if !fc.requireUserAndTarget(c, userID, &models.Character{}, characterID, "User or character does not exist") {
		return
	}

	var existing models.FavoriteCharacter
	err := fc.db.Where("user_id = ? AND character_id = ?", userID, characterID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "This character is not a favorite of this user"})
		return
	}
	if err != nil {
		utils.LogError(err, "check favorite character")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to remove favorite character"})
		return
	}

	if err := fc.db.Where("user_id = ? AND character_id = ?", userID, characterID).
		Delete(&models.FavoriteCharacter{}).Error; err != nil {
		utils.LogError(err, "remove favorite character")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to remove favorite character"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Favorite character removed successfully"})
}

// requireUserAndTarget verifies both the user and the target entity
// exist before touching an association row. Answers 404 with notFoundMsg
// when either is missing and reports whether the caller may proceed.
func (fc *FavoriteController) requireUserAndTarget(c *gin.Context, userID uint, target interface{}, targetID uint, notFoundMsg string) bool {
	userOK, err := fc.exists(&models.User{}, userID)
	if err != nil {
		utils.LogError(err, "check user")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to check user"})
		return false
	}

	targetOK, err := fc.exists(target, targetID)
	if err != nil {
		utils.LogError(err, "check favorite target")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to check favorite target"})
		return false
	}

	if !userOK || !targetOK {
		c.JSON(http.StatusNotFound, gin.H{"msg": notFoundMsg})
		return false
	}
	return true
}
