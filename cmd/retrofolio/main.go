// Package main is the single-binary entrypoint for Retrofolio.
package main

import (
	_ "github.com/joho/godotenv/autoload" // Load .env (GEMINI_API_KEY) if present

	"github.com/samuel-avson/retrofolio/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
