// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// This file implements the interactive HBNB console: a line-oriented
// read-eval-print loop over the business facade. All logic beyond
// argument parsing and error-to-text mapping lives in the facade.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AleutianAI/hbnb/pkg/ux"
	"github.com/AleutianAI/hbnb/services/api/facade"
	"github.com/AleutianAI/hbnb/services/api/store"
)

const consolePrompt = "(hbnb) "

// ConsoleRunner drives the interactive console loop. Input and output
// are injected so tests can script sessions.
type ConsoleRunner struct {
	facade      *facade.Facade
	in          io.Reader
	out         io.Writer
	printer     *ux.Printer
	interactive bool
}

// NewConsoleRunner returns a runner over the given facade. When
// interactive is false (piped input), the prompt and styling are
// suppressed so output stays machine-readable.
func NewConsoleRunner(f *facade.Facade, in io.Reader, out io.Writer, interactive bool) *ConsoleRunner {
	return &ConsoleRunner{
		facade:      f,
		in:          in,
		out:         out,
		printer:     ux.NewPrinter(out, interactive),
		interactive: interactive,
	}
}

// Run executes the console loop until EOF, "quit" or context
// cancellation.
func (r *ConsoleRunner) Run(ctx context.Context) error {
	if r.interactive {
		r.printer.Mutedf("Welcome to the HBNB console. Type help to list commands.\n")
	}
	scanner := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if r.interactive {
			r.printer.Printf("%s", ux.Styles.Prompt.Render(consolePrompt))
		}
		if !scanner.Scan() {
			if r.interactive {
				r.printer.Printf("\n")
			}
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !r.dispatch(line) {
			return nil
		}
	}
}

// dispatch runs one console line. Returns false when the loop should
// exit.
func (r *ConsoleRunner) dispatch(line string) bool {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "quit", "exit", "EOF":
		return false
	case "help", "?":
		r.printHelp()
	case "create":
		r.doCreate(rest)
	case "show":
		r.doShow(rest)
	case "destroy":
		r.doDestroy(rest)
	case "all":
		r.doAll(rest)
	case "update":
		r.doUpdate(rest)
	case "count":
		r.doCount(rest)
	default:
		r.errorf("unknown command: %s", verb)
	}
	return true
}

func (r *ConsoleRunner) printHelp() {
	r.printer.Printf(`Commands:
  create <Kind> [json]                  Create an instance, prints id
  show <Kind> <id>                      Show instance JSON
  destroy <Kind> <id>                   Delete instance
  all [Kind]                            List instances
  update <Kind> <id> <json|key=value>   Update instance
  count <Kind>                          Count instances
  quit                                  Exit
`)
}

// errorf prints a console error in the traditional ** message ** shape.
func (r *ConsoleRunner) errorf(format string, args ...any) {
	r.printer.Errorf("** %s **\n", fmt.Sprintf(format, args...))
}

func (r *ConsoleRunner) doCreate(rest string) {
	if rest == "" {
		r.errorf("class name missing")
		return
	}
	kind, blob, _ := strings.Cut(rest, " ")
	payload := store.Record{}
	if blob = strings.TrimSpace(blob); blob != "" {
		if err := json.Unmarshal([]byte(blob), &payload); err != nil {
			r.errorf("payload must be valid JSON object")
			return
		}
	}
	rec, err := r.facade.Create(kind, payload)
	if err != nil {
		r.errorf("%s", err)
		return
	}
	r.printer.Successf("%v\n", rec["id"])
}

func (r *ConsoleRunner) doShow(rest string) {
	kind, id, ok := splitKindID(rest)
	if !ok {
		r.errorf("class name or id missing")
		return
	}
	rec, err := r.facade.Get(kind, id)
	if err != nil {
		r.errorf("%s", err)
		return
	}
	r.printJSON(rec)
}

func (r *ConsoleRunner) doDestroy(rest string) {
	kind, id, ok := splitKindID(rest)
	if !ok {
		r.errorf("class name or id missing")
		return
	}
	if err := r.facade.Delete(kind, id); err != nil {
		r.errorf("%s", err)
	}
}

func (r *ConsoleRunner) doAll(rest string) {
	if rest != "" {
		kind := strings.Fields(rest)[0]
		r.printJSON(r.facade.List(kind))
		return
	}
	r.printJSON(r.facade.ListAll())
}

func (r *ConsoleRunner) doUpdate(rest string) {
	parts := strings.SplitN(rest, " ", 3)
	if len(parts) < 3 || strings.TrimSpace(parts[2]) == "" {
		r.errorf("class name, id or attributes missing")
		return
	}
	kind, id := parts[0], parts[1]
	updates, err := parseUpdates(strings.TrimSpace(parts[2]))
	if err != nil {
		r.errorf("attributes must be JSON or key=value pairs")
		return
	}
	rec, err := r.facade.Update(kind, id, updates)
	if err != nil {
		r.errorf("%s", err)
		return
	}
	r.printJSON(rec)
}

func (r *ConsoleRunner) doCount(rest string) {
	if rest == "" {
		r.errorf("class name missing")
		return
	}
	kind := strings.Fields(rest)[0]
	r.printer.Printf("%d\n", r.facade.Count(kind))
}

func (r *ConsoleRunner) printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		r.errorf("%s", err)
		return
	}
	r.printer.Printf("%s\n", out)
}

// splitKindID parses "<Kind> <id>" argument pairs.
func splitKindID(rest string) (kind, id string, ok bool) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}
