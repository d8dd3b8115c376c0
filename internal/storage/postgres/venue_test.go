package postgres

import (
	"context"
	"errors"
	"testing"

	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var venueCols = []string{
	"id", "name", "city", "state", "address", "phone", "genres", "image_link",
	"facebook_link", "website_link", "seeking_talent", "seeking_description",
}

func testVenue() models.Venue {
	return models.Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             []string{"Jazz", "Reggae"},
		WebsiteLink:        "https://www.themusicalhop.com",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks.",
	}
}

func TestCreateVenue(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)
	v := testVenue()

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO venues")).
		WithArgs(v.Name, v.City, v.State, v.Address, v.Phone, sqlmock.AnyArg(), "", "",
			v.WebsiteLink, true, v.SeekingDescription).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	id, err := s.CreateVenue(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestCreateVenueRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO venues")).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	id, err := s.CreateVenue(context.Background(), testVenue())
	require.Error(t, err)
	assert.Zero(t, id)
	assert.Contains(t, err.Error(), "storage.postgres.CreateVenue")
}

func TestCreateVenueCommitFailure(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO venues")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	_, err := s.CreateVenue(context.Background(), testVenue())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
}

func TestUpdateVenue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "not found", affected: 0, wantErr: storage.ErrVenueNotFound},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMockStorage(t)
			v := testVenue()
			v.ID = 7

			mock.ExpectBegin()
			mock.ExpectExec(q("UPDATE venues")).
				WithArgs(v.Name, v.City, v.State, v.Address, v.Phone, sqlmock.AnyArg(), "", "",
					v.WebsiteLink, true, v.SeekingDescription, 7).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))
			if tc.wantErr != nil {
				mock.ExpectRollback()
			} else {
				mock.ExpectCommit()
			}

			err := s.UpdateVenue(context.Background(), v)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeleteVenueRemovesShows(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(q("DELETE FROM shows WHERE venue_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(q("DELETE FROM venues WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteVenue(context.Background(), 1))
}

func TestDeleteVenueNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR UPDATE")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := s.DeleteVenue(context.Background(), 99)
	assert.ErrorIs(t, err, storage.ErrVenueNotFound)
}

func TestDeleteVenueShowsFailureRollsBack(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(q("DELETE FROM shows WHERE venue_id = $1")).
		WithArgs(1).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := s.DeleteVenue(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrVenueNotFound)
	assert.Contains(t, err.Error(), "failed to delete venue shows")
}

func TestGetVenue(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("FROM venues WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(
			1, "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
			"{Jazz,Reggae,Swing}", "", "", "", true, "",
		))

	venue, err := s.GetVenue(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, venue.ID)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, []string{"Jazz", "Reggae", "Swing"}, venue.Genres)
	assert.True(t, venue.SeekingTalent)
}

func TestGetVenueEmptyGenres(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("FROM venues WHERE id = $1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(
			2, "The Dueling Pianos Bar", "New York", "NY", "335 Delancey Street", "",
			"{}", "", "", "", false, "",
		))

	venue, err := s.GetVenue(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, venue.Genres)
	assert.Empty(t, venue.Genres)
}

func TestGetVenueNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("FROM venues WHERE id = $1")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(venueCols))

	_, err := s.GetVenue(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrVenueNotFound)
}

func TestGetVenueWithShowsSplitsAroundNow(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("FROM venues WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(
			1, "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "",
			"{Jazz}", "", "", "", false, "",
		))
	mock.ExpectQuery(q("WHERE s.venue_id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"show_id", "artist_id", "artist_name", "artist_image_link", "start_time"}).
			AddRow(10, 4, "Guns N Petals", "", testNow.AddDate(0, -1, 0)).
			AddRow(11, 5, "Matt Quevedo", "", testNow).
			AddRow(12, 6, "The Wild Sax Band", "", testNow.AddDate(0, 1, 0)))

	detail, err := s.GetVenueWithShows(context.Background(), 1, testNow)
	require.NoError(t, err)

	assert.Equal(t, "The Musical Hop", detail.Name)
	require.Len(t, detail.PastShows, 2)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, 2, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Equal(t, 11, detail.PastShows[1].ShowID)
	assert.Equal(t, "The Wild Sax Band", detail.UpcomingShows[0].ArtistName)
}

func TestGetVenueWithShowsNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("FROM venues WHERE id = $1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(venueCols))

	_, err := s.GetVenueWithShows(context.Background(), 3, testNow)
	assert.ErrorIs(t, err, storage.ErrVenueNotFound)
}

func TestSearchVenues(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("v.name ILIKE $1")).
		WithArgs("%Music%", testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming_shows"}).
			AddRow(3, "Park Square Live Music & Coffee", 1).
			AddRow(1, "The Musical Hop", 0))

	venues, err := s.SearchVenues(context.Background(), "Music", testNow)
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "Park Square Live Music & Coffee", venues[0].Name)
	assert.Equal(t, 1, venues[0].NumUpcomingShows)
}

func TestSearchVenuesEscapesWildcards(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("v.name ILIKE $1")).
		WithArgs(`%50\%%`, testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming_shows"}))

	venues, err := s.SearchVenues(context.Background(), "50%", testNow)
	require.NoError(t, err)
	assert.NotNil(t, venues)
	assert.Empty(t, venues)
}

func TestGroupVenuesByLocation(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("ORDER BY v.state, v.city, v.name, v.id")).
		WithArgs(testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}).
			AddRow(1, "The Musical Hop", "San Francisco", "CA", 0).
			AddRow(3, "Park Square Live Music & Coffee", "San Francisco", "CA", 1).
			AddRow(2, "The Dueling Pianos Bar", "New York", "NY", 0))

	areas, err := s.GroupVenuesByLocation(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	require.Len(t, areas[0].Venues, 2)
	assert.Equal(t, 1, areas[0].Venues[1].NumUpcomingShows)
	assert.Equal(t, "New York", areas[1].City)
	require.Len(t, areas[1].Venues, 1)
}

func TestGroupByLocationPartitions(t *testing.T) {
	t.Parallel()

	row := func(id int, city, state string) venueLocationRow {
		return venueLocationRow{Summary: models.Summary{ID: id}, City: city, State: state}
	}

	rows := []venueLocationRow{
		row(1, "Springfield", "IL"),
		row(2, "Springfield", "MA"),
		row(3, "Springfield", "IL"),
		row(4, "springfield", "IL"),
		row(5, "Boston", "MA"),
	}

	areas := groupByLocation(rows)

	require.Len(t, areas, 4)

	seen := make(map[int]int)
	for _, area := range areas {
		assert.NotEmpty(t, area.Venues)
		for _, v := range area.Venues {
			seen[v.ID]++
			for _, r := range rows {
				if r.ID == v.ID {
					assert.Equal(t, area.City, r.City)
					assert.Equal(t, area.State, r.State)
				}
			}
		}
	}

	assert.Len(t, seen, len(rows))
	for id, n := range seen {
		assert.Equal(t, 1, n, "venue %d grouped more than once", id)
	}

	assert.Equal(t, []int{1, 3}, []int{areas[0].Venues[0].ID, areas[0].Venues[1].ID})
}

func TestGroupByLocationEmpty(t *testing.T) {
	t.Parallel()

	areas := groupByLocation(nil)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestListVenues(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("SELECT id, name FROM venues ORDER BY name, id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(3, "Park Square Live Music & Coffee").
			AddRow(2, "The Dueling Pianos Bar"))

	venues, err := s.ListVenues(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, 3, venues[0].ID)
	assert.Equal(t, "The Dueling Pianos Bar", venues[1].Name)
}

func TestListVenuesError(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("SELECT id, name FROM venues")).WillReturnError(errors.New("connection reset"))

	_, err := s.ListVenues(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.postgres.ListVenues")
}
