package migration

import (
	"fmt"
	"log"

	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PricePoint{}); err != nil {
		log.Fatalf("Error migrating price point database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListEntry{}); err != nil {
		log.Fatalf("Error migrating shopping list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PurchaseRecord{}); err != nil {
		log.Fatalf("Error migrating purchase record database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
