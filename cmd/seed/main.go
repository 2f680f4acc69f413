package main

import (
	"log"
	"os"
	"time"

	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/model"
	"wa-bazaar-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding sample listings...")

	expires := time.Now().Add(entity.ListingTTL)

	listings := []model.Listing{
		{
			Id:          uuid.New(),
			Status:      "active",
			Category:    "housing",
			SubCategory: "flat",
			Title:       "2 BHK flat in Kothrud",
			Data: datatypes.JSONMap{
				"housing": map[string]interface{}{
					"propertyType": "flat",
					"bhk":          float64(2),
					"price":        float64(14000),
					"furnishing":   "semi-furnished",
					"description":  "Airy flat near Kothrud bus depot, family preferred",
				},
				"location": map[string]interface{}{"city": "Pune", "area": "Kothrud"},
			},
			OwnerId:   "919800000001",
			Contact:   "919800000001",
			ExpiresAt: expires,
		},
		{
			Id:          uuid.New(),
			Status:      "active",
			Category:    "housing",
			SubCategory: "flat",
			Title:       "2 BHK flat in Baner",
			Data: datatypes.JSONMap{
				"housing": map[string]interface{}{
					"propertyType": "flat",
					"bhk":          float64(2),
					"price":        float64(20000),
					"furnishing":   "furnished",
					"description":  "Fully furnished flat in Baner, close to IT parks",
				},
				"location": map[string]interface{}{"city": "Pune", "area": "Baner"},
			},
			OwnerId:   "919800000002",
			Contact:   "919800000002",
			ExpiresAt: expires,
		},
		{
			Id:          uuid.New(),
			Status:      "active",
			Category:    "urban_help",
			SubCategory: "plumber",
			Title:       "Plumber available in Andheri",
			Data: datatypes.JSONMap{
				"urban_help": map[string]interface{}{
					"serviceType": "plumber",
					"experience":  float64(8),
					"charges":     float64(500),
					"description": "All plumbing work, available weekdays 9am-7pm",
				},
				"location": map[string]interface{}{"city": "Mumbai", "area": "Andheri East"},
			},
			OwnerId:   "919800000003",
			Contact:   "919800000003",
			ExpiresAt: expires,
		},
		{
			Id:          uuid.New(),
			Status:      "active",
			Category:    "vehicle",
			SubCategory: "bike",
			Title:       "Honda Activa 2019, well maintained",
			Data: datatypes.JSONMap{
				"vehicle": map[string]interface{}{
					"vehicleType": "scooter",
					"brand":       "Honda Activa",
					"year":        float64(2019),
					"kmDriven":    float64(22000),
					"price":       float64(45000),
					"description": "Single owner, regularly serviced",
				},
				"location": map[string]interface{}{"city": "Pune", "area": "Hadapsar"},
			},
			OwnerId:   "919800000004",
			Contact:   "919800000004",
			ExpiresAt: expires,
		},
		{
			Id:          uuid.New(),
			Status:      "active",
			Category:    "commodity",
			SubCategory: "onion",
			Title:       "Fresh onions, 500 kg, Nashik",
			Data: datatypes.JSONMap{
				"commodity": map[string]interface{}{
					"commodityType": "onion",
					"quantity":      float64(500),
					"unit":          "kg",
					"price":         float64(18),
					"description":   "Fresh harvest, bulk orders welcome",
				},
				"location": map[string]interface{}{"city": "Nashik", "area": "Lasalgaon"},
			},
			OwnerId:   "919800000005",
			Contact:   "919800000005",
			ExpiresAt: expires,
		},
	}

	for _, l := range listings {
		var existing model.Listing
		if err := db.Where("title = ? AND owner_id = ?", l.Title, l.OwnerId).First(&existing).Error; err == nil {
			log.Printf("Listing '%s' already exists, skipping...", l.Title)
			continue
		}

		if err := db.Create(&l).Error; err != nil {
			log.Printf("Error creating listing '%s': %v", l.Title, err)
		} else {
			log.Printf("Created listing: %s (%s)", l.Title, l.Category)
		}
	}

	log.Println("Listing seeding completed!")
}
