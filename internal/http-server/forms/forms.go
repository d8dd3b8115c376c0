// Package forms holds the venue, artist and show submission forms and their validation.
package forms

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fyyur/internal/models"

	"github.com/ajg/form"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID", "IL",
	"IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC",
	"ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI", "SC", "SD",
	"TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop", "Punk",
	"R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

var phoneRe = regexp.MustCompile(`^\d{3}-?\d{3}-?\d{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	states := setOf(States)
	genres := setOf(Genres)

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return states[fl.Field().String()]
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return genres[fl.Field().String()]
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	return v
}

func setOf(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}

	return set
}

// Validate checks a form against its validate tags. Failures are validator.ValidationErrors.
func Validate(v any) error {
	return validate.Struct(v)
}

// valuesDecoder is implemented by forms that read an HTML form submission field by field.
type valuesDecoder interface {
	decodeValues(vs url.Values) error
}

// Decode reads a urlencoded form body when the request says so and JSON otherwise.
// Repeated keys such as genres=Jazz&genres=Blues become a list.
func Decode(r *http.Request, v any) error {
	if render.GetRequestContentType(r) != render.ContentTypeForm {
		return render.DecodeJSON(r.Body, v)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}

	if d, ok := v.(valuesDecoder); ok {
		return d.decodeValues(r.PostForm)
	}

	return form.DecodeValues(v, r.PostForm)
}

type VenueForm struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,state"`
	Address            string   `json:"address" form:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,phone"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,genre"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

func (f *VenueForm) Normalize() {
	trim(&f.Name, &f.City, &f.State, &f.Address, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	f.State = strings.ToUpper(f.State)
	f.Genres = normalizeGenres(f.Genres)
}

func (f *VenueForm) decodeValues(vs url.Values) error {
	seekingTalent, err := parseCheckbox(vs.Get("seeking_talent"))
	if err != nil {
		return fmt.Errorf("seeking_talent: %w", err)
	}

	*f = VenueForm{
		Name:               vs.Get("name"),
		City:               vs.Get("city"),
		State:              vs.Get("state"),
		Address:            vs.Get("address"),
		Phone:              vs.Get("phone"),
		Genres:             vs["genres"],
		ImageLink:          vs.Get("image_link"),
		FacebookLink:       vs.Get("facebook_link"),
		WebsiteLink:        vs.Get("website_link"),
		SeekingTalent:      seekingTalent,
		SeekingDescription: vs.Get("seeking_description"),
	}

	return nil
}

func (f VenueForm) Venue(id int) models.Venue {
	return models.Venue{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,state"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,phone"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,genre"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

func (f *ArtistForm) Normalize() {
	trim(&f.Name, &f.City, &f.State, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	f.State = strings.ToUpper(f.State)
	f.Genres = normalizeGenres(f.Genres)
}

func (f *ArtistForm) decodeValues(vs url.Values) error {
	seekingVenue, err := parseCheckbox(vs.Get("seeking_venue"))
	if err != nil {
		return fmt.Errorf("seeking_venue: %w", err)
	}

	*f = ArtistForm{
		Name:               vs.Get("name"),
		City:               vs.Get("city"),
		State:              vs.Get("state"),
		Phone:              vs.Get("phone"),
		Genres:             vs["genres"],
		ImageLink:          vs.Get("image_link"),
		FacebookLink:       vs.Get("facebook_link"),
		WebsiteLink:        vs.Get("website_link"),
		SeekingVenue:       seekingVenue,
		SeekingDescription: vs.Get("seeking_description"),
	}

	return nil
}

func (f ArtistForm) Artist(id int) models.Artist {
	return models.Artist{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

type ShowForm struct {
	VenueID   int       `json:"venue_id" form:"venue_id" validate:"required,gt=0"`
	ArtistID  int       `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
	StartTime time.Time `json:"start_time" form:"start_time" validate:"required"`
}

func (f *ShowForm) decodeValues(vs url.Values) error {
	venueID, err := parseID(vs.Get("venue_id"))
	if err != nil {
		return fmt.Errorf("venue_id: %w", err)
	}

	artistID, err := parseID(vs.Get("artist_id"))
	if err != nil {
		return fmt.Errorf("artist_id: %w", err)
	}

	startTime, err := parseStartTime(vs.Get("start_time"))
	if err != nil {
		return fmt.Errorf("start_time: %w", err)
	}

	*f = ShowForm{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}

	return nil
}

func (f ShowForm) Show() models.Show {
	return models.Show{
		VenueID:   f.VenueID,
		ArtistID:  f.ArtistID,
		StartTime: f.StartTime,
	}
}

// parseCheckbox accepts what browsers and WTForms send for a checkbox. Absent means unchecked.
func parseCheckbox(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "no", "off", "false", "0":
		return false, nil
	case "y", "yes", "on", "true", "1":
		return true, nil
	default:
		return false, fmt.Errorf("invalid checkbox value %q", s)
	}
}

// parseID leaves a blank id at zero so the required rule reports it.
func parseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	return strconv.Atoi(s)
}

// Times without a zone are read as UTC.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// normalizeGenres trims entries, drops blanks and duplicates and never returns nil.
func normalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	seen := make(map[string]bool, len(genres))

	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}

	return out
}
