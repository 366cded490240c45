package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var SecretKey []byte

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT secret key not set")
	}
	SecretKey = []byte(secret)
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

// CatalogPath is the simulated upstream path the catalog is fetched from. A
// path containing "error" makes every fetch fail, which is how upstream
// outages are exercised locally.
func CatalogPath() string {
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		return path
	}
	return "/api/catalog"
}
