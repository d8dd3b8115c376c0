package models

import "time"

type Venue struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// VenueShow is a show as listed on a venue page.
type VenueShow struct {
	ShowID          int       `json:"show_id" db:"show_id"`
	ArtistID        int       `json:"artist_id" db:"artist_id"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link" db:"artist_image_link"`
	StartTime       time.Time `json:"start_time" db:"start_time"`
}

type VenueDetail struct {
	Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// Area groups the venues sharing one exact city/state pair.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}
