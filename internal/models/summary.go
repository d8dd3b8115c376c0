package models

// Kind selects which owner of shows a query is about.
type Kind int

const (
	KindVenue Kind = iota
	KindArtist
)

func (k Kind) String() string {
	switch k {
	case KindVenue:
		return "venue"
	case KindArtist:
		return "artist"
	default:
		return "unknown"
	}
}

// Summary is the short form of a venue or artist used by listings and search results.
type Summary struct {
	ID               int    `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows" db:"num_upcoming_shows"`
}
