package postgres

import (
	"context"
	"fmt"

	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/jmoiron/sqlx"
)

// CreateShow books an artist into a venue. Both must exist; they stay locked against
// deletion until the show row is committed.
func (s *Storage) CreateShow(ctx context.Context, show models.Show) (int, error) {
	const op = "storage.postgres.CreateShow"

	var id int
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var locked int

		err := tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR KEY SHARE`, show.VenueID).Scan(&locked)
		if err != nil {
			return notFound(err, storage.ErrVenueNotFound)
		}

		err = tx.QueryRowContext(ctx, `SELECT id FROM artists WHERE id = $1 FOR KEY SHARE`, show.ArtistID).Scan(&locked)
		if err != nil {
			return notFound(err, storage.ErrArtistNotFound)
		}

		query := `
			INSERT INTO shows (venue_id, artist_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id`

		err = tx.QueryRowContext(ctx, query, show.VenueID, show.ArtistID, show.StartTime).Scan(&id)
		if err != nil {
			return mapShowFKError(err)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetShow(ctx context.Context, id int) (*models.Show, error) {
	const op = "storage.postgres.GetShow"

	var show models.Show
	err := s.db.GetContext(ctx, &show, `SELECT id, venue_id, artist_id, start_time FROM shows WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrShowNotFound))
	}

	return &show, nil
}

func (s *Storage) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	const op = "storage.postgres.ListShows"

	query := `
		SELECT s.id, s.venue_id, v.name AS venue_name, s.artist_id, a.name AS artist_name,
			a.image_link AS artist_image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time ASC, s.id`

	shows := []models.ShowListing{}
	if err := s.db.SelectContext(ctx, &shows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shows, nil
}
