package editArtist

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyyur/internal/http-server/handlers/artist/editArtist/mocks"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEditArtistHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{
		"name": "Guns N Petals",
		"city": "San Francisco",
		"state": "CA",
		"genres": ["Rock n Roll"],
		"seeking_venue": true,
		"seeking_description": " Looking for shows "
	}`

	wantArtist := models.Artist{
		ID:                 4,
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows",
	}

	testCases := []struct {
		name           string
		artistID       string
		requestBody    string
		mockSetup      func(m *mocks.ArtistUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			artistID:    "4",
			requestBody: validBody,
			mockSetup: func(m *mocks.ArtistUpdater) {
				m.On("UpdateArtist", mock.Anything, wantArtist).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","artist_id":4}`,
		},
		{
			name:           "Invalid artist ID format",
			artistID:       "0x4",
			requestBody:    validBody,
			mockSetup:      func(m *mocks.ArtistUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid artist id format"}`,
		},
		{
			name:           "Unknown genre",
			artistID:       "4",
			requestBody:    `{"name": "Guns N Petals", "city": "San Francisco", "state": "CA", "genres": ["Grunge"]}`,
			mockSetup:      func(m *mocks.ArtistUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Genres[0] has unknown genre Grunge"}`,
		},
		{
			name:        "Artist not found",
			artistID:    "4",
			requestBody: validBody,
			mockSetup: func(m *mocks.ArtistUpdater) {
				m.On("UpdateArtist", mock.Anything, wantArtist).Return(storage.ErrArtistNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"artist not found"}`,
		},
		{
			name:        "Storage error",
			artistID:    "4",
			requestBody: validBody,
			mockSetup: func(m *mocks.ArtistUpdater) {
				m.On("UpdateArtist", mock.Anything, wantArtist).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"artist Guns N Petals could not be updated"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewArtistUpdater(t)
			tc.mockSetup(updater)

			req := httptest.NewRequest(http.MethodPost, "/artists/"+tc.artistID+"/edit",
				bytes.NewBufferString(tc.requestBody))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.artistID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			New(logger, updater).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
