package getVenue

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyyur/internal/http-server/handlers/venue/getVenue/mocks"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetVenueHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	past := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	upcoming := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	detail := &models.VenueDetail{
		Venue: models.Venue{
			ID:            1,
			Name:          "The Musical Hop",
			City:          "San Francisco",
			State:         "CA",
			Genres:        []string{"Jazz", "Reggae"},
			SeekingTalent: true,
		},
		PastShows: []models.VenueShow{
			{ShowID: 1, ArtistID: 4, ArtistName: "Guns N Petals", StartTime: past},
		},
		UpcomingShows: []models.VenueShow{
			{ShowID: 2, ArtistID: 5, ArtistName: "Matt Quevedo", StartTime: upcoming},
		},
		PastShowsCount:     1,
		UpcomingShowsCount: 1,
	}

	testCases := []struct {
		name           string
		venueID        string
		mockSetup      func(m *mocks.VenueDetailGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			venueID: "1",
			mockSetup: func(m *mocks.VenueDetailGetter) {
				m.On("GetVenueWithShows", mock.Anything, 1, mock.AnythingOfType("time.Time")).Return(detail, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp VenueResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Venue)
				assert.Equal(t, "The Musical Hop", resp.Venue.Name)
				assert.Equal(t, []string{"Jazz", "Reggae"}, resp.Venue.Genres)
				require.Len(t, resp.Venue.PastShows, 1)
				assert.Equal(t, "Guns N Petals", resp.Venue.PastShows[0].ArtistName)
				require.Len(t, resp.Venue.UpcomingShows, 1)
				assert.True(t, upcoming.Equal(resp.Venue.UpcomingShows[0].StartTime))
				assert.Equal(t, 1, resp.Venue.UpcomingShowsCount)
			},
		},
		{
			name:           "Invalid venue ID format",
			venueID:        "abc",
			mockSetup:      func(m *mocks.VenueDetailGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid venue id format"}`,
		},
		{
			name:           "Non-positive venue ID",
			venueID:        "0",
			mockSetup:      func(m *mocks.VenueDetailGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid venue id format"}`,
		},
		{
			name:    "Venue not found",
			venueID: "999",
			mockSetup: func(m *mocks.VenueDetailGetter) {
				m.On("GetVenueWithShows", mock.Anything, 999, mock.AnythingOfType("time.Time")).
					Return(nil, fmt.Errorf("storage.postgres.GetVenueWithShows: %w", storage.ErrVenueNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"venue not found"}`,
		},
		{
			name:    "Storage error",
			venueID: "1",
			mockSetup: func(m *mocks.VenueDetailGetter) {
				m.On("GetVenueWithShows", mock.Anything, 1, mock.AnythingOfType("time.Time")).
					Return(nil, errors.New("connection timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get venue"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewVenueDetailGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/venues/{id}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/venues/"+tc.venueID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestGetVenueMissingID(t *testing.T) {
	t.Parallel()

	getter := mocks.NewVenueDetailGetter(t)

	req := httptest.NewRequest(http.MethodGet, "/venues/", nil)
	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), getter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"venue id is required"}`, rr.Body.String())
}
