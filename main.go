package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "JSON, YAML or TOML configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Println("Error loading configuration:", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		fmt.Println("Error in configuration:", err)
		os.Exit(1)
	}

	gm, err := newGame(config, model.NewTerminalRenderer(), os.Stdout)
	if err != nil {
		fmt.Println("Error starting game:", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	err = runGame(context.Background(), gm, sigChan)
	switch {
	case errors.Is(err, errInterrupted):
		fmt.Println("\n🛑 Shutting down gracefully...")
	case err != nil:
		fmt.Println("Error running game:", err)
		os.Exit(1)
	}
	printFinalStats(os.Stdout, gm)
}
