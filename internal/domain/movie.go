package domain

type Movie struct {
	ID       string
	Title    string
	Language string
	Duration int
	Genre    string
}

// Catalog is the read-only view of the static movie and show data loaded at
// startup. Implementations are immutable after construction and safe for
// concurrent use without locking.
type Catalog interface {
	GetMovie(id string) (*Movie, bool)
	GetShow(id string) (*Show, bool)
	AllMovies() []*Movie
	AllShows() []*Show
}
