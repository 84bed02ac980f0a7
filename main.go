package main

import (
	"github.com/andrewpaige1/flashdeck/cmd"
	"github.com/andrewpaige1/flashdeck/config"
)

func init() {
	// Load .env file if not in production environment
	config.LoadDotEnv()
}

func main() {
	cmd.Execute()
}
