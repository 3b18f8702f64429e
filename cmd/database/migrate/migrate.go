package migration

import (
	"fmt"
	"log"

	"pantry-tracker-api/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptScan{}); err != nil {
		log.Fatalf("Error migrating receipt scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		log.Fatalf("Error migrating shopping list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Subscription{}); err != nil {
		log.Fatalf("Error migrating subscription database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PaymentTransaction{}); err != nil {
		log.Fatalf("Error migrating payment transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeBookmark{}); err != nil {
		log.Fatalf("Error migrating recipe bookmark database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
