package main

import (
	"flag"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"route-optimizer-service/internal/adapters/repositories"
	"route-optimizer-service/internal/platform/db"
)

// dbtool initializes the schema and loads data for local runs:
// JSON seed files for demo fixtures, CSV files for order imports.
func main() {
	seedPath := flag.String("seed", "", "path to a JSON seed file (drivers, routes, orders)")
	csvPath := flag.String("csv", "", "path to a CSV file of orders to import")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *seedPath != "" {
		log.Printf("Seeding database from %s...", *seedPath)
		if err := repositories.SeedFromJSON(database, *seedPath); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("Seeding complete.")
	}

	if *csvPath != "" {
		log.Printf("Importing orders from %s...", *csvPath)
		n, err := repositories.ImportOrdersCSV(database, *csvPath)
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}
		log.Printf("Imported %d orders.", n)
	}
}
