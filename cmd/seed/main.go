// Command seed bootstraps an initial superuser account. The email and
// password come from flags so deployments can script it.
package main

import (
	"flag"
	"log"

	"github.com/contactmansi/Recipe-Box/config"
	"github.com/contactmansi/Recipe-Box/internal/database"
	"github.com/contactmansi/Recipe-Box/internal/service"
)

func main() {
	email := flag.String("email", "", "superuser email")
	password := flag.String("password", "", "superuser password")
	name := flag.String("name", "admin", "superuser display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	user, err := authService.Register(*email, *password, *name)
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	if err := db.Model(user).Updates(map[string]interface{}{
		"is_staff":     true,
		"is_superuser": true,
	}).Error; err != nil {
		log.Fatalf("Failed to promote superuser: %v", err)
	}

	log.Printf("Created superuser %s (%s)", user.Email, user.ID)
}
