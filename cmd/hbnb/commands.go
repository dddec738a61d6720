// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/hbnb/services/api/facade"
	"github.com/AleutianAI/hbnb/services/api/store"
)

// --- Global Command Variables ---
var (
	healthURL string // Base URL of a running API server

	rootCmd = &cobra.Command{
		Use:   "hbnb",
		Short: "A cli to inspect and manage HBNB entities",
		Long: `hbnb is the command-line front end for the HBNB backend.

The console subcommand opens an interactive shell over an in-process
store, using the same business facade as the HTTP API.`,
	}

	consoleCmd = &cobra.Command{
		Use:   "console",
		Short: "Open the interactive HBNB console",
		Long: `Opens a read-eval-print console over a fresh in-process store.

Commands:
  create <Kind> [json]                  Create an instance, prints id
  show <Kind> <id>                      Show instance JSON
  destroy <Kind> <id>                   Delete instance
  all [Kind]                            List instances
  update <Kind> <id> <json|key=value>   Update instance
  count <Kind>                          Count instances
  quit / EOF                            Exit`,
		Run: runConsoleCommand,
	}

	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Check that a running HBNB API server is up",
		Run:   runHealthCommand,
	}
)

func init() {
	healthCmd.Flags().StringVar(&healthURL, "url", "http://127.0.0.1:5000",
		"Base URL of the API server")

	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(healthCmd)
}

// runConsoleCommand wires a fresh store and facade into the console
// runner. The console state is process-local and independent of any
// running API server.
func runConsoleCommand(cmd *cobra.Command, args []string) {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	runner := NewConsoleRunner(facade.New(store.New()), os.Stdin, os.Stdout, interactive)
	if err := runner.Run(context.Background()); err != nil {
		log.Fatalf("console failed: %v", err)
	}
}
