package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wuddevdet/internal/config"
	"wuddevdet/internal/service"
)

type Handlers struct {
	BoardService   service.BoardService
	SessionService service.SessionService
	TokenService   service.TokenService
	AuthService    service.AuthService
	ProfileService service.ProfileService
	TablesService  service.TablesService
	Cfg            *config.Config
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		BoardService:   service.Board,
		SessionService: service.Session,
		TokenService:   service.Tokens,
		AuthService:    service.Auth,
		ProfileService: service.Profile,
		TablesService:  service.Tables,
		Cfg:            config,
	}
}

const msgBadRequest = "Invalid request format"

var errEmptyBody = errors.New("request body is empty")

// decodeJSON reads a JSON body into v. Unknown fields are ignored.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}
	return json.NewDecoder(r.Body).Decode(v)
}
