package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/goliatone/go-docgen/pkg/compose"
)

func main() {
	templateID := flag.String("template", "", "template identifier to compose")
	dataPath := flag.String("data", "", "JSON data file (stdin if empty)")
	baseDir := flag.String("dir", ".", "directory holding template artifacts")
	output := flag.String("output", "", "output file (stdout if empty)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *templateID == "" {
		log.Fatal("missing required -template flag")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := readData(*dataPath)
	if err != nil {
		log.Fatalf("Failed to read data: %v", err)
	}

	composer := compose.New(
		compose.WithBaseDir(*baseDir),
		compose.WithLogger(logger),
	)

	document, err := composer.Generate(context.Background(), compose.Request{
		TemplateID: *templateID,
		Data:       data,
	})
	if err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, document, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *output)
		return
	}
	if _, err := os.Stdout.Write(document); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func readData(path string) (map[string]any, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = os.ReadFile("/dev/stdin")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return data, nil
}
