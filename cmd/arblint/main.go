package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env augments but never overrides the real environment.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
