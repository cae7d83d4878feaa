package config

import (
	"Recipe-App-API/internal/utils"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// WaitForDB blocks until the database accepts connections, probing once per
// second. Meant to run before migrations when the database container is still
// starting up.
func WaitForDB() (*gorm.DB, error) {
	log.Println("Waiting for database...")

	for {
		db, err := ConnectDB()
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					log.Println("Database is available!")
					return db, nil
				}
			}
		}

		log.Println("Database is unavailable, waiting for 1 sec")
		time.Sleep(1 * time.Second)
	}
}
