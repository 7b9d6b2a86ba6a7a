package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}

// StrictTypes reads SCAFFGEN_STRICT_TYPES; unset or unparsable means the
// lenient default.
func StrictTypes() bool {
	v := os.Getenv("SCAFFGEN_STRICT_TYPES")
	if v == "" {
		return false
	}
	strict, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return strict
}
