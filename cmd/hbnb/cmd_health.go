// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/hbnb/pkg/ux"
)

// runHealthCommand probes /health on a running API server and reports
// the result.
func runHealthCommand(cmd *cobra.Command, args []string) {
	printer := ux.NewPrinter(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
	url := strings.TrimRight(healthURL, "/") + "/health"

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		printer.Errorf("unreachable: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		printer.Errorf("bad response from %s: %v\n", url, err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		printer.Errorf("unhealthy: %s (%d)\n", body["status"], resp.StatusCode)
		os.Exit(1)
	}
	printer.Successf("ok\n")
}
