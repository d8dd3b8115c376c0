package getChoices

import (
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"

	"github.com/go-chi/render"
)

// ChoicesResponse lists the values accepted by the state and genre fields of the create forms.
type ChoicesResponse struct {
	response.Response
	States []string `json:"states"`
	Genres []string `json:"genres"`
}

func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ChoicesResponse{
			Response: response.OK(),
			States:   forms.States,
			Genres:   forms.Genres,
		})
	}
}
