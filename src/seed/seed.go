package seed

import (
	"log"
	"os"

	"github.com/MuseoScan/MuseoScan-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the default admin account used by museum staff. The password
// comes from ADMIN_PASSWORD so deployments can override the default.
func Seed(db *gorm.DB) {
	var user models.UserModel
	result := db.Where("username = ?", "admin").First(&user)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	newUser := models.UserModel{
		Username: "admin",
		Password: string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create admin user: %v\n", err)
	} else {
		log.Println("User 'admin' created")
	}
}
