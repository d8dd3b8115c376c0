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

type artistRow struct {
	ID                 int            `db:"id"`
	Name               string         `db:"name"`
	City               string         `db:"city"`
	State              string         `db:"state"`
	Phone              string         `db:"phone"`
	Genres             pq.StringArray `db:"genres"`
	ImageLink          string         `db:"image_link"`
	FacebookLink       string         `db:"facebook_link"`
	WebsiteLink        string         `db:"website_link"`
	SeekingVenue       bool           `db:"seeking_venue"`
	SeekingDescription string         `db:"seeking_description"`
}

func (r artistRow) toModel() models.Artist {
	return models.Artist{
		ID:                 r.ID,
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Phone:              r.Phone,
		Genres:             nonNil(r.Genres),
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
	}
}

const artistColumns = `id, name, city, state, phone, genres, image_link,
	facebook_link, website_link, seeking_venue, seeking_description`

func (s *Storage) CreateArtist(ctx context.Context, a models.Artist) (int, error) {
	const op = "storage.postgres.CreateArtist"

	query := `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
			facebook_link, website_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return tx.QueryRowContext(ctx, query,
			a.Name,
			a.City,
			a.State,
			a.Phone,
			pq.Array(nonNil(a.Genres)),
			a.ImageLink,
			a.FacebookLink,
			a.WebsiteLink,
			a.SeekingVenue,
			a.SeekingDescription,
		).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateArtist(ctx context.Context, a models.Artist) error {
	const op = "storage.postgres.UpdateArtist"

	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5, image_link = $6,
			facebook_link = $7, website_link = $8, seeking_venue = $9, seeking_description = $10
		WHERE id = $11`

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			a.Name,
			a.City,
			a.State,
			a.Phone,
			pq.Array(nonNil(a.Genres)),
			a.ImageLink,
			a.FacebookLink,
			a.WebsiteLink,
			a.SeekingVenue,
			a.SeekingDescription,
			a.ID,
		)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return storage.ErrArtistNotFound
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteArtist removes the artist together with all of their shows.
func (s *Storage) DeleteArtist(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteArtist"

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var locked int
		err := tx.QueryRowContext(ctx, `SELECT id FROM artists WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			return notFound(err, storage.ErrArtistNotFound)
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete artist shows: %w", err)
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete artist: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetArtist(ctx context.Context, id int) (*models.Artist, error) {
	const op = "storage.postgres.GetArtist"

	var row artistRow
	err := s.db.GetContext(ctx, &row, `SELECT `+artistColumns+` FROM artists WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrArtistNotFound))
	}

	artist := row.toModel()

	return &artist, nil
}

func (s *Storage) GetArtistWithShows(ctx context.Context, id int, now time.Time) (*models.ArtistDetail, error) {
	const op = "storage.postgres.GetArtistWithShows"

	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT s.id AS show_id, v.id AS venue_id, v.name AS venue_name,
			v.image_link AS venue_image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC`

	var shows []models.ArtistShow
	if err = s.db.SelectContext(ctx, &shows, query, id); err != nil {
		return nil, fmt.Errorf("%s: failed to get shows: %w", op, err)
	}

	detail := &models.ArtistDetail{
		Artist:        *artist,
		PastShows:     []models.ArtistShow{},
		UpcomingShows: []models.ArtistShow{},
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

func (s *Storage) ListArtists(ctx context.Context) ([]models.Summary, error) {
	const op = "storage.postgres.ListArtists"

	artists := []models.Summary{}
	if err := s.db.SelectContext(ctx, &artists, `SELECT id, name FROM artists ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Storage) SearchArtists(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	const op = "storage.postgres.SearchArtists"

	query := `
		SELECT a.id, a.name, ` + upcomingShowsColumn(models.KindArtist, "a", "$2") + `
		FROM artists a
		WHERE a.name ILIKE $1
		ORDER BY a.name, a.id`

	artists := []models.Summary{}
	if err := s.db.SelectContext(ctx, &artists, query, containsPattern(term), now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}
