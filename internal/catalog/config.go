package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a catalog definition from a YAML file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read catalog file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse catalog file: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in sample catalog: three movies and four shows
// on three screens, each with a 5x8 seat map. Show times are scheduled
// relative to the current date.
func Default() *Catalog {
	today := time.Now()
	at := func(daysAhead, hour, minute int) string {
		t := today.AddDate(0, 0, daysAhead)
		return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, time.Local).
			Format(startTimeLayout)
	}

	cfg := Config{
		Movies: []MovieDef{
			{ID: "M001", Title: "The Timekeeper", Language: "English", Duration: 130, Genre: "Sci-Fi"},
			{ID: "M002", Title: "Dil Se Again", Language: "Hindi", Duration: 150, Genre: "Romance/Drama"},
			{ID: "M003", Title: "The Chef's Secret", Language: "Hindi", Duration: 120, Genre: "Comedy"},
		},
		Shows: []ShowDef{
			{ID: "S101", MovieID: "M001", StartTime: at(0, 13, 30), Screen: "Screen 1", Rows: 5, Cols: 8, PricePerSeat: "200.00"},
			{ID: "S102", MovieID: "M001", StartTime: at(0, 19, 0), Screen: "Screen 1", Rows: 5, Cols: 8, PricePerSeat: "250.00"},
			{ID: "S201", MovieID: "M002", StartTime: at(0, 15, 0), Screen: "Screen 2", Rows: 5, Cols: 8, PricePerSeat: "220.00"},
			{ID: "S301", MovieID: "M003", StartTime: at(1, 11, 0), Screen: "Screen 3", Rows: 5, Cols: 8, PricePerSeat: "150.00"},
		},
	}

	c, err := New(cfg)
	if err != nil {
		// the built-in definitions are constants; this cannot happen
		panic(err)
	}

	return c
}
