package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adiwidodo/kontak/internal/config"
	"github.com/adiwidodo/kontak/internal/contact"
	"github.com/adiwidodo/kontak/internal/storage"
	"github.com/adiwidodo/kontak/internal/tui"
)

func main() {
	initFlag := flag.Bool("init", false, "create a new contacts database")
	seedFlag := flag.Bool("seed", false, "create a database populated with sample contacts")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal(err)
	}

	if *initFlag || *seedFlag {
		if cfg.Storage.Backend == "sqlite" {
			if err := storage.Initialize(cfg.Storage.Path); err != nil {
				log.Fatal(err)
			}
		}
		if *seedFlag {
			store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
			if err != nil {
				log.Fatal(err)
			}
			if err := contact.CreateFixtures(store); err != nil {
				store.Close()
				log.Fatal(err)
			}
			store.Close()
		}
		fmt.Printf("Database created at %s\n", cfg.Storage.Path)
		return
	}

	// Open storage backend
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	manager := contact.NewManager(store)

	// Drop expired trash once per session, before the first view
	if result := manager.PurgeTrash(cfg.Trash.Retention()); !result.Success {
		log.Printf("Trash purge failed: %s", result.Message)
	}

	// Create model
	model, err := tui.New(manager)
	if err != nil {
		log.Fatal(err)
	}

	// Start the program
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
