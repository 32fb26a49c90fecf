package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"wuddevdet/internal/config"
	"wuddevdet/internal/models"
	"wuddevdet/internal/task"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// hashCost is lowered by tests.
var hashCost = bcrypt.DefaultCost

type LoginResult struct {
	Session models.Session `json:"session"`
	Token   string         `json:"token"`
}

type SignupResult struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) *task.Task[LoginResult]
	Signup(ctx context.Context, input models.SignupInput) *task.Task[SignupResult]
}

type account struct {
	hash    []byte
	isAdmin bool
}

type authService struct {
	accounts    map[string]account
	tokens      TokenService
	loginDelay  time.Duration
	signupDelay time.Duration
}

// NewAuthService knows the demo member and, when a password is configured,
// the admin account. Nothing else can log in.
func NewAuthService(cfg config.Auth, tokens TokenService) (AuthService, error) {
	s := &authService{
		accounts:    make(map[string]account),
		tokens:      tokens,
		loginDelay:  cfg.LoginDelay,
		signupDelay: cfg.SignupDelay,
	}

	if err := s.addAccount(cfg.DemoEmail, cfg.DemoPassword, false); err != nil {
		return nil, err
	}
	if cfg.AdminPassword != "" {
		if err := s.addAccount(cfg.AdminEmail, cfg.AdminPassword, true); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *authService) addAccount(email, password string, isAdmin bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return fmt.Errorf("error hashing password for %s: %w", email, err)
	}
	s.accounts[email] = account{hash: hash, isAdmin: isAdmin}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) *task.Task[LoginResult] {
	return task.Run(func(ctx context.Context) (LoginResult, error) {
		if err := task.Sleep(ctx, s.loginDelay); err != nil {
			return LoginResult{}, err
		}

		acc, ok := s.accounts[email]
		if !ok || bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
			return LoginResult{}, ErrInvalidCredentials
		}

		session := models.Session{
			UserID:   CurrentUserID,
			Email:    email,
			LoggedIn: true,
			IsAdmin:  acc.isAdmin,
		}

		token, err := s.tokens.Issue(session)
		if err != nil {
			return LoginResult{}, err
		}

		log.Printf("User %s logged in as %s", email, session.Role())
		return LoginResult{Session: session, Token: token}, nil
	})
}

// Signup only acknowledges the form; accounts are not created.
func (s *authService) Signup(ctx context.Context, input models.SignupInput) *task.Task[SignupResult] {
	return task.Run(func(ctx context.Context) (SignupResult, error) {
		if err := task.Sleep(ctx, s.signupDelay); err != nil {
			return SignupResult{}, err
		}

		log.Printf("Signup received for %s from %s", input.Email, input.Location)
		return SignupResult{
			Email:   input.Email,
			Message: "Account created. Please log in.",
		}, nil
	})
}
