package service

import (
	"wuddevdet/internal/config"
	"wuddevdet/internal/repository"
	"wuddevdet/internal/storage"
)

type Service struct {
	Board   BoardService
	Session SessionService
	Tokens  TokenService
	Auth    AuthService
	Profile ProfileService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) (*Service, error) {
	var inbox GuestInbox = NewSimulatedInbox()
	if cfg.Board.PersistGuestMessages {
		inbox = NewRepositoryInbox(rep.Board)
	}

	tokens := NewTokenService(cfg.JWTSecretKey, cfg.AccessTokenDuration)

	auth, err := NewAuthService(cfg.Auth, tokens)
	if err != nil {
		return nil, err
	}

	return &Service{
		Board:   NewBoardService(rep.Board, inbox, NewIDGenerator(cfg.Board.IDStrategy), cfg.Board.SubmitDelay),
		Session: NewSessionService(NewContextIdentity(), rep.Profile),
		Tokens:  tokens,
		Auth:    auth,
		Profile: NewProfileService(rep.Profile, storage),
		Tables:  NewTablesService(rep.Tables),
	}, nil
}
