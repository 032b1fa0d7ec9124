package main

import (
	"github.com/joho/godotenv"

	"github.com/se0sangh0/otaple/internal/cli"
)

func main() {
	// Optional .env for endpoint overrides; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}
