package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/tutpic-starwars-model/models"
	"github.com/4GeeksAcademy/tutpic-starwars-model/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type planetPayload struct {
	Gravity        string `json:"gravity"`
	Population     int64  `json:"population"`
	Diameter       int    `json:"diameter"`
	Name           string `json:"name"`
	Climate        string `json:"climate"`
	Terrain        string `json:"terrain"`
	RotationPeriod int    `json:"rotation_period"`
}

type PlanetController struct {
	db *gorm.DB
}

func NewPlanetController(db *gorm.DB) *PlanetController {
	return &PlanetController{db: db}
}

// GET /planets
func (pc *PlanetController) List(c *gin.Context) {
	var planets []models.Planet
	if err := pc.db.Find(&planets).Error; err != nil {
		utils.LogError(err, "list planets")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load planets"})
		return
	}

	serialized := make([]map[string]interface{}, 0, len(planets))
	for i := range planets {
		serialized = append(serialized, planets[i].Serialize())
	}

	c.JSON(http.StatusOK, serialized)
}

// POST /planets
//
// Same zero-value validation rule as character creation.
func (pc *PlanetController) Create(c *gin.Context) {
	var req planetPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No data received"})
		return
	}

	if req.Gravity == "" || req.Population == 0 || req.Diameter == 0 || req.Name == "" ||
		req.Climate == "" || req.Terrain == "" || req.RotationPeriod == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required fields"})
		return
	}

	planet := models.Planet{
		Gravity:        req.Gravity,
		Population:     req.Population,
		Diameter:       req.Diameter,
		Name:           req.Name,
		Climate:        req.Climate,
		Terrain:        req.Terrain,
		RotationPeriod: req.RotationPeriod,
	}

	if err := pc.db.Create(&planet).Error; err != nil {
		utils.LogError(err, "create planet")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create planet"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":    "Planet created successfully",
		"planet": planet.Serialize(),
	})
}

// GET /planets/:id
func (pc *PlanetController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var planet models.Planet
	if err := pc.db.First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "No planet with that id"})
			return
		}
		utils.LogError(err, "get planet")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load planet"})
		return
	}

	c.JSON(http.StatusOK, planet.Serialize())
}
