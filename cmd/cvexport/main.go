package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/zucenko/folio/cv"
)

func usage() {
	color.Yellow("USAGE")
	fmt.Println("  cvexport [-o cv.html] [-from cv.json]")
	color.Yellow("PARAMETERS")
	color.Cyan("  -o")
	fmt.Println("      file to write, parent directories are created")
	color.Cyan("  -from")
	fmt.Println("      JSON file with the CV content, the built-in one when empty")
}

// load reads a CV from a JSON file, or returns the built-in one.
func load(path string) (cv.CV, error) {
	if path == "" {
		return cv.Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cv.CV{}, err
	}
	var c cv.CV
	if err := json.Unmarshal(b, &c); err != nil {
		return cv.CV{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func run(out, from string) error {
	c, err := load(from)
	if err != nil {
		return err
	}
	return cv.Export(out, c)
}

func main() {
	out := flag.String("o", "cv.html", "output file")
	from := flag.String("from", "", "CV content as JSON")
	flag.Usage = usage
	flag.Parse()

	if err := run(*out, *from); err != nil {
		color.Red("Failed to export CV: %v", err)
		os.Exit(1)
	}
	color.Green("CV written to %s", *out)
}
