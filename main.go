package main

import (
	"github.com/joho/godotenv"

	"github.com/fiskerit/intake_backend/cmd"
)

func main() {
	// Credentials usually arrive through a .env file in development.
	_ = godotenv.Load()

	cmd.Execute()
}
