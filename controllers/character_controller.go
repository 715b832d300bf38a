package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/tutpic-starwars-model/models"
	"github.com/4GeeksAcademy/tutpic-starwars-model/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type characterPayload struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Weight    int    `json:"weight"`
	SkinColor string `json:"skin_color"`
	HairColor string `json:"hair_color"`
	EyeColor  string `json:"eye_color"`
}

type CharacterController struct {
	db *gorm.DB
}

func NewCharacterController(db *gorm.DB) *CharacterController {
	return &CharacterController{db: db}
}

// GET /people
func (cc *CharacterController) List(c *gin.Context) {
	var characters []models.Character
	if err := cc.db.Find(&characters).Error; err != nil {
		utils.LogError(err, "list characters")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load characters"})
		return
	}

	serialized := make([]map[string]interface{}, 0, len(characters))
	for i := range characters {
		serialized = append(serialized, characters[i].Serialize())
	}

	c.JSON(http.StatusOK, serialized)
}

// POST /people
//
// Validation rejects zero values, not just absent fields, so age: 0 or
// weight: 0 comes back as 400. Kept for compatibility with the previous
// API surface.
func (cc *CharacterController) Create(c *gin.Context) {
	var req characterPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No data received"})
		return
	}

	if req.Name == "" || req.Age == 0 || req.Gender == "" || req.Weight == 0 ||
		req.SkinColor == "" || req.HairColor == "" || req.EyeColor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required fields"})
		return
	}

	character := models.Character{
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Weight:    req.Weight,
		SkinColor: req.SkinColor,
		HairColor: req.HairColor,
		EyeColor:  req.EyeColor,
	}

	if err := cc.db.Create(&character).Error; err != nil {
		utils.LogError(err, "create character")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create character"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":       "Character created successfully",
		"character": character.Serialize(),
	})
}

// GET /people/:id
func (cc *CharacterController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var character models.Character
	if err := cc.db.First(&character, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "No character with that id"})
			return
		}
		utils.LogError(err, "get character")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load character"})
		return
	}

	c.JSON(http.StatusOK, character.Serialize())
}
