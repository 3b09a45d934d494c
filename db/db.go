package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/config"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := config.Env.DatabaseURL

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}

	if err := DB.AutoMigrate(
		&model.User{},
		&model.Competency{},
		&model.ActivityType{},
		&model.RecognizedCourse{},
		&model.Event{},
		&model.Activity{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Connected to PostgreSQL successfully")
}

func GetDB() *gorm.DB {
	return DB
}
