package routes

import (
	"net/http"

	"github.com/4GeeksAcademy/tutpic-starwars-model/controllers"
	"github.com/4GeeksAcademy/tutpic-starwars-model/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter creates the gin.Engine, registers all routes and returns the router
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware before the routes
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	userController := controllers.NewUserController(db)
	characterController := controllers.NewCharacterController(db)
	planetController := controllers.NewPlanetController(db)
	favoriteController := controllers.NewFavoriteController(db)

	// Route discovery: generated from the registered handler set, so new
	// endpoints show up here without maintenance.
	r.GET("/", func(c *gin.Context) {
		registered := make([]gin.H, 0)
		for _, route := range r.Routes() {
			registered = append(registered, gin.H{
				"method":  route.Method,
				"path":    route.Path,
				"handler": route.Handler,
			})
		}
		c.JSON(http.StatusOK, gin.H{"routes": registered})
	})

	r.GET("/users", userController.List)
	r.POST("/users", userController.Create)
	r.GET("/users/:id", userController.Get)
	r.GET("/users/favorites/:id", userController.Favorites)

	r.POST("/users/:id/planets/:planet_id", favoriteController.AddPlanet)
	r.DELETE("/users/:id/planets/:planet_id", favoriteController.RemovePlanet)
	r.POST("/users/:id/people/:character_id", favoriteController.AddCharacter)
	r.DELETE("/users/:id/people/:character_id", favoriteController.RemoveCharacter)

	r.GET("/people", characterController.List)
	r.POST("/people", characterController.Create)
	r.GET("/people/:id", characterController.Get)

	r.GET("/planets", planetController.List)
	r.POST("/planets", planetController.Create)
	r.GET("/planets/:id", planetController.Get)

	return r
}
