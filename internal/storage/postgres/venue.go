package postgres

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type venueRow struct {
	ID                 int            `db:"id"`
	Name               string         `db:"name"`
	City               string         `db:"city"`
	State              string         `db:"state"`
	Address            string         `db:"address"`
	Phone              string         `db:"phone"`
	Genres             pq.StringArray `db:"genres"`
	ImageLink          string         `db:"image_link"`
	FacebookLink       string         `db:"facebook_link"`
	WebsiteLink        string         `db:"website_link"`
	SeekingTalent      bool           `db:"seeking_talent"`
	SeekingDescription string         `db:"seeking_description"`
}

func (r venueRow) toModel() models.Venue {
	return models.Venue{
		ID:                 r.ID,
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              r.Phone,
		Genres:             nonNil(r.Genres),
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
	}
}

type venueLocationRow struct {
	models.Summary
	City  string `db:"city"`
	State string `db:"state"`
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
	facebook_link, website_link, seeking_talent, seeking_description`

func (s *Storage) CreateVenue(ctx context.Context, v models.Venue) (int, error) {
	const op = "storage.postgres.CreateVenue"

	query := `
		INSERT INTO venues (name, city, state, address, phone, genres, image_link,
			facebook_link, website_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return tx.QueryRowContext(ctx, query,
			v.Name,
			v.City,
			v.State,
			v.Address,
			v.Phone,
			pq.Array(nonNil(v.Genres)),
			v.ImageLink,
			v.FacebookLink,
			v.WebsiteLink,
			v.SeekingTalent,
			v.SeekingDescription,
		).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateVenue(ctx context.Context, v models.Venue) error {
	const op = "storage.postgres.UpdateVenue"

	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
			image_link = $7, facebook_link = $8, website_link = $9,
			seeking_talent = $10, seeking_description = $11
		WHERE id = $12`

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			v.Name,
			v.City,
			v.State,
			v.Address,
			v.Phone,
			pq.Array(nonNil(v.Genres)),
			v.ImageLink,
			v.FacebookLink,
			v.WebsiteLink,
			v.SeekingTalent,
			v.SeekingDescription,
			v.ID,
		)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return storage.ErrVenueNotFound
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteVenue removes the venue together with all of its shows.
func (s *Storage) DeleteVenue(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteVenue"

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		// Locking the venue blocks concurrent CreateShow calls for it until we finish.
		var locked int
		err := tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			return notFound(err, storage.ErrVenueNotFound)
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete venue shows: %w", err)
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete venue: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetVenue(ctx context.Context, id int) (*models.Venue, error) {
	const op = "storage.postgres.GetVenue"

	var row venueRow
	err := s.db.GetContext(ctx, &row, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrVenueNotFound))
	}

	venue := row.toModel()

	return &venue, nil
}

// GetVenueWithShows loads a venue page: the venue plus its shows split around now.
func (s *Storage) GetVenueWithShows(ctx context.Context, id int, now time.Time) (*models.VenueDetail, error) {
	const op = "storage.postgres.GetVenueWithShows"

	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT s.id AS show_id, a.id AS artist_id, a.name AS artist_name,
			a.image_link AS artist_image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC`

	var shows []models.VenueShow
	if err = s.db.SelectContext(ctx, &shows, query, id); err != nil {
		return nil, fmt.Errorf("%s: failed to get shows: %w", op, err)
	}

	detail := &models.VenueDetail{
		Venue:         *venue,
		PastShows:     []models.VenueShow{},
		UpcomingShows: []models.VenueShow{},
	}

	for _, show := range shows {
		if models.IsUpcoming(show.StartTime, now) {
			detail.UpcomingShows = append(detail.UpcomingShows, show)
		} else {
			detail.PastShows = append(detail.PastShows, show)
		}
	}

	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return detail, nil
}

// ListVenues returns the id and name of every venue, ordered by name.
func (s *Storage) ListVenues(ctx context.Context) ([]models.Summary, error) {
	const op = "storage.postgres.ListVenues"

	venues := []models.Summary{}
	if err := s.db.SelectContext(ctx, &venues, `SELECT id, name FROM venues ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (s *Storage) SearchVenues(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	const op = "storage.postgres.SearchVenues"

	query := `
		SELECT v.id, v.name, ` + upcomingShowsColumn(models.KindVenue, "v", "$2") + `
		FROM venues v
		WHERE v.name ILIKE $1
		ORDER BY v.name, v.id`

	venues := []models.Summary{}
	if err := s.db.SelectContext(ctx, &venues, query, containsPattern(term), now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

// GroupVenuesByLocation lists every venue grouped by its exact (city, state) pair.
func (s *Storage) GroupVenuesByLocation(ctx context.Context, now time.Time) ([]models.Area, error) {
	const op = "storage.postgres.GroupVenuesByLocation"

	query := `
		SELECT v.id, v.name, v.city, v.state, ` + upcomingShowsColumn(models.KindVenue, "v", "$1") + `
		FROM venues v
		ORDER BY v.state, v.city, v.name, v.id`

	var rows []venueLocationRow
	if err := s.db.SelectContext(ctx, &rows, query, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return groupByLocation(rows), nil
}

// groupByLocation keeps the first-seen order of locations.
func groupByLocation(rows []venueLocationRow) []models.Area {
	type location struct{ city, state string }

	areas := []models.Area{}
	index := make(map[location]int)

	for _, row := range rows {
		key := location{city: row.City, state: row.State}

		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, models.Area{City: row.City, State: row.State})
		}

		areas[i].Venues = append(areas[i].Venues, row.Summary)
	}

	return areas
}
