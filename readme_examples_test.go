package outline_test

import (
	"fmt"
	"log"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/layout"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_extractOutline() {
	o, err := outline.Open("document.pdf").Outline()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Title:", o.Title)
	for _, entry := range o.Entries {
		fmt.Printf("%s %s (p.%d)\n", entry.Level, entry.Text, entry.Page)
	}
}

func Example_extractJSON() {
	data, err := outline.Open("document.pdf").JSON()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(data))
}

func Example_writeFile() {
	err := outline.Open("document.pdf").WriteFile("document.json")
	if err != nil {
		log.Fatal(err)
	}
}

func Example_extractWithOptions() {
	filterCfg := layout.DefaultFilterConfig()
	filterCfg.MinRepeatPages = 2

	o, err := outline.Open("document.pdf").
		MaxPages(50).                // Only read the first 50 pages
		WithFilterConfig(filterCfg). // Treat two-page repeats as furniture
		Outline()
	_ = o
	_ = err
}

func Example_titleOnly() {
	title, err := outline.Open("document.pdf").Title()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(title)
}

func Example_debugLines() {
	// Lines exposes the reconstructed text lines for debugging why a
	// heading was or was not detected.
	lines, err := outline.Open("document.pdf").Lines()
	if err != nil {
		log.Fatal(err)
	}

	for _, line := range lines {
		fmt.Printf("p.%d %.1fpt %q\n", line.Page, line.FontSize, line.Text)
	}
}
