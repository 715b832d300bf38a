package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/tutpic-starwars-model/models"
	"github.com/4GeeksAcademy/tutpic-starwars-model/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserRegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// GET /users
func (uc *UserController) List(c *gin.Context) {
	var users []models.User
	if err := uc.db.Find(&users).Error; err != nil {
		utils.LogError(err, "list users")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load users"})
		return
	}

	serialized := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		serialized = append(serialized, users[i].Serialize())
	}

	c.JSON(http.StatusOK, gin.H{"users": serialized})
}

// POST /users
func (uc *UserController) Create(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No data received"})
		return
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required fields"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError(err, "hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create user"})
		return
	}

	user := models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hash,
		IsActive: true,
	}

	if err := uc.db.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			c.JSON(http.StatusConflict, gin.H{"msg": "Email or username already taken"})
			return
		}
		utils.LogError(err, "create user")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":  "User created successfully",
		"user": user.Serialize(),
	})
}

// GET /users/:id
func (uc *UserController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "No user with that id"})
			return
		}
		utils.LogError(err, "get user")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "User found successfully",
		"user": user.Serialize(),
	})
}

// GET /users/favorites/:id
//
// An unknown user answers 400 here, not 404. That mismatch with the rest
// of the API is kept for compatibility with existing clients.
func (uc *UserController) Favorites(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "No user with that id"})
			return
		}
		utils.LogError(err, "get user favorites")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load user"})
		return
	}

	characters, err := models.FavoriteCharacters(uc.db, user.ID)
	if err != nil {
		utils.LogError(err, "load favorite characters")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load favorites"})
		return
	}

	planets, err := models.FavoritePlanets(uc.db, user.ID)
	if err != nil {
		utils.LogError(err, "load favorite planets")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load favorites"})
		return
	}

	favs := user.SerializeFavs(characters, planets)
	c.JSON(http.StatusOK, gin.H{
		"favorite_planets":    favs["favorite_planets"],
		"favorite_characters": favs["favorite_characters"],
	})
}
