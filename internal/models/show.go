package models

import "time"

type Show struct {
	ID        int       `json:"id" db:"id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// ShowListing is a show joined with the names needed to list it.
type ShowListing struct {
	ID              int       `json:"id" db:"id"`
	VenueID         int       `json:"venue_id" db:"venue_id"`
	VenueName       string    `json:"venue_name" db:"venue_name"`
	ArtistID        int       `json:"artist_id" db:"artist_id"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link" db:"artist_image_link"`
	StartTime       time.Time `json:"start_time" db:"start_time"`
}

// IsUpcoming reports whether a show starting at start is still ahead of now.
// A show starting exactly at now is already past.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}
