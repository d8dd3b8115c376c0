package models

import "time"

type Artist struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistShow is a show as listed on an artist page.
type ArtistShow struct {
	ShowID         int       `json:"show_id" db:"show_id"`
	VenueID        int       `json:"venue_id" db:"venue_id"`
	VenueName      string    `json:"venue_name" db:"venue_name"`
	VenueImageLink string    `json:"venue_image_link" db:"venue_image_link"`
	StartTime      time.Time `json:"start_time" db:"start_time"`
}

type ArtistDetail struct {
	Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
