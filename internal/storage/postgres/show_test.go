package postgres

import (
	"context"
	"testing"

	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShow(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)
	show := models.Show{VenueID: 1, ArtistID: 4, StartTime: testNow}

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR KEY SHARE")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(q("SELECT id FROM artists WHERE id = $1 FOR KEY SHARE")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(q("INSERT INTO shows (venue_id, artist_id, start_time)")).
		WithArgs(1, 4, testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
	mock.ExpectCommit()

	id, err := s.CreateShow(context.Background(), show)
	require.NoError(t, err)
	assert.Equal(t, 20, id)
}

func TestCreateShowMissingReferences(t *testing.T) {
	t.Parallel()

	t.Run("venue", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR KEY SHARE")).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := s.CreateShow(context.Background(), models.Show{VenueID: 9, ArtistID: 4, StartTime: testNow})
		assert.ErrorIs(t, err, storage.ErrVenueNotFound)
	})

	t.Run("artist", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR KEY SHARE")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(q("SELECT id FROM artists WHERE id = $1 FOR KEY SHARE")).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := s.CreateShow(context.Background(), models.Show{VenueID: 1, ArtistID: 9, StartTime: testNow})
		assert.ErrorIs(t, err, storage.ErrArtistNotFound)
	})
}

func TestCreateShowForeignKeyViolation(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR KEY SHARE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(q("SELECT id FROM artists WHERE id = $1 FOR KEY SHARE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(q("INSERT INTO shows")).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "shows_artist_id_fkey"})
	mock.ExpectRollback()

	_, err := s.CreateShow(context.Background(), models.Show{VenueID: 1, ArtistID: 4, StartTime: testNow})
	assert.ErrorIs(t, err, storage.ErrArtistNotFound)
}

func TestMapShowFKError(t *testing.T) {
	t.Parallel()

	other := &pq.Error{Code: "23505", Constraint: "shows_pkey"}

	assert.ErrorIs(t, mapShowFKError(&pq.Error{Code: "23503", Constraint: "shows_venue_id_fkey"}), storage.ErrVenueNotFound)
	assert.ErrorIs(t, mapShowFKError(&pq.Error{Code: "23503", Constraint: "shows_artist_id_fkey"}), storage.ErrArtistNotFound)
	assert.Equal(t, error(other), mapShowFKError(other))
}

func TestGetShow(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("FROM shows WHERE id = $1")).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "venue_id", "artist_id", "start_time"}).
			AddRow(20, 1, 4, testNow))

	show, err := s.GetShow(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, models.Show{ID: 20, VenueID: 1, ArtistID: 4, StartTime: testNow}, *show)
}

func TestGetShowAfterVenueDeleted(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(q("DELETE FROM shows WHERE venue_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("DELETE FROM venues WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(q("FROM shows WHERE id = $1")).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "venue_id", "artist_id", "start_time"}))

	require.NoError(t, s.DeleteVenue(context.Background(), 1))

	_, err := s.GetShow(context.Background(), 20)
	assert.ErrorIs(t, err, storage.ErrShowNotFound)
}

func TestListShows(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("JOIN artists a ON a.id = s.artist_id")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "venue_id", "venue_name", "artist_id", "artist_name", "artist_image_link", "start_time",
		}).AddRow(20, 1, "The Musical Hop", 4, "Guns N Petals", "https://images.example/gnp.jpg", testNow))

	shows, err := s.ListShows(context.Background())
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
	assert.True(t, testNow.Equal(shows[0].StartTime))
}
