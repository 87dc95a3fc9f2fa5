// Package catalog holds the static movie and show data the engine serves.
// The catalog is built once at startup, either from a YAML definition file
// or from the built-in sample data, and never changes afterwards.
package catalog

import (
	"fmt"
	"time"

	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/shopspring/decimal"
)

const maxRows = 26 // seat rows are labelled A..Z

type Catalog struct {
	movies     map[string]*domain.Movie
	shows      map[string]*domain.Show
	movieOrder []string
	showOrder  []string
}

// MovieDef and ShowDef describe catalog entries as they appear in the
// definition file.
type MovieDef struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
	Duration int    `yaml:"duration_minutes"`
	Genre    string `yaml:"genre"`
}

type ShowDef struct {
	ID           string `yaml:"id"`
	MovieID      string `yaml:"movie_id"`
	StartTime    string `yaml:"start_time"`
	Screen       string `yaml:"screen"`
	Rows         int    `yaml:"rows"`
	Cols         int    `yaml:"cols"`
	PricePerSeat string `yaml:"price_per_seat"`
}

type Config struct {
	Movies []MovieDef `yaml:"movies"`
	Shows  []ShowDef  `yaml:"shows"`
}

const startTimeLayout = "2006-01-02 15:04"

// New builds an immutable catalog from cfg, validating identifiers and
// cross-references.
func New(cfg Config) (*Catalog, error) {
	c := &Catalog{
		movies: make(map[string]*domain.Movie, len(cfg.Movies)),
		shows:  make(map[string]*domain.Show, len(cfg.Shows)),
	}

	for _, def := range cfg.Movies {
		if def.ID == "" || def.Title == "" {
			return nil, fmt.Errorf("movie %q: id and title are required", def.ID)
		}
		if _, dup := c.movies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate movie id %s", def.ID)
		}

		c.movies[def.ID] = &domain.Movie{
			ID:       def.ID,
			Title:    def.Title,
			Language: def.Language,
			Duration: def.Duration,
			Genre:    def.Genre,
		}
		c.movieOrder = append(c.movieOrder, def.ID)
	}

	for _, def := range cfg.Shows {
		if def.ID == "" {
			return nil, fmt.Errorf("show with empty id")
		}
		if _, dup := c.shows[def.ID]; dup {
			return nil, fmt.Errorf("duplicate show id %s", def.ID)
		}
		if _, ok := c.movies[def.MovieID]; !ok {
			return nil, fmt.Errorf("show %s references unknown movie %s", def.ID, def.MovieID)
		}
		if def.Rows < 1 || def.Rows > maxRows || def.Cols < 1 {
			return nil, fmt.Errorf("show %s: invalid seat grid %dx%d", def.ID, def.Rows, def.Cols)
		}

		startTime, err := time.ParseInLocation(startTimeLayout, def.StartTime, time.Local)
		if err != nil {
			return nil, fmt.Errorf("show %s: bad start_time %q: %w", def.ID, def.StartTime, err)
		}

		price, err := decimal.NewFromString(def.PricePerSeat)
		if err != nil {
			return nil, fmt.Errorf("show %s: bad price_per_seat %q: %w", def.ID, def.PricePerSeat, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("show %s: negative price_per_seat", def.ID)
		}

		c.shows[def.ID] = &domain.Show{
			ID:           def.ID,
			MovieID:      def.MovieID,
			StartTime:    startTime,
			Screen:       def.Screen,
			PricePerSeat: price,
			Seats:        domain.NewSeatMap(def.Rows, def.Cols),
		}
		c.showOrder = append(c.showOrder, def.ID)
	}

	return c, nil
}

func (c *Catalog) GetMovie(id string) (*domain.Movie, bool) {
	m, ok := c.movies[id]
	return m, ok
}

func (c *Catalog) GetShow(id string) (*domain.Show, bool) {
	s, ok := c.shows[id]
	return s, ok
}

func (c *Catalog) AllMovies() []*domain.Movie {
	out := make([]*domain.Movie, len(c.movieOrder))
	for i, id := range c.movieOrder {
		out[i] = c.movies[id]
	}

	return out
}

func (c *Catalog) AllShows() []*domain.Show {
	out := make([]*domain.Show, len(c.showOrder))
	for i, id := range c.showOrder {
		out[i] = c.shows[id]
	}

	return out
}
