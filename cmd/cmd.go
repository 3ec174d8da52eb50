// Package cmd provides CLI commands for the concierge services.
//
// Commands:
//   - serve: chat API server (question answering)
//   - ingestd: ingestion server (object-storage event notifications)
//
// Signal handling and graceful shutdown are implemented
// for all commands via context cancellation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
)

// Execute is the main entry point for the concierge CLI.
func Execute() error {
	// Initialize logger once at entry point
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "ingestd":
		return runIngestd()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("Concierge - conference schedule assistant")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  concierge serve [addr]   Start chat API server (default: 127.0.0.1:8080)")
	fmt.Println("  concierge ingestd [addr] Start ingestion server (default: 127.0.0.1:8081)")
	fmt.Println("  concierge --version      Show version information")
	fmt.Println("  concierge --help         Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GEMINI_API_KEY     Required: Gemini API key (default provider)")
	fmt.Println("  DATABASE_URL       Optional: overrides postgres_* config")
	fmt.Println("  DEBUG              Optional: Enable debug logging")
}
