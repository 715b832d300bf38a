package main

import (
	"fmt"
	"log"

	"github.com/4GeeksAcademy/tutpic-starwars-model/config"
	"github.com/4GeeksAcademy/tutpic-starwars-model/database"
	"github.com/4GeeksAcademy/tutpic-starwars-model/routes"
	"github.com/4GeeksAcademy/tutpic-starwars-model/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Postgres when DATABASE_URL is set, local SQLite file otherwise.
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	r := routes.SetupRouter(db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server started at %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
