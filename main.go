package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"DoodleBoard/internal/config"
	"DoodleBoard/internal/ui"
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "doodle", "doodle.toml")
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting Doodle")
	if err := ui.RunApp(cfg); err != nil {
		log.Fatalf("Doodle exited: %v", err)
	}
}
