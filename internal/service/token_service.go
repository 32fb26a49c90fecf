package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"wuddevdet/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenService interface {
	Issue(session models.Session) (string, error)
	Parse(tokenString string) (models.Session, error)
}

type tokenService struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

func NewTokenService(secret string, duration time.Duration) TokenService {
	return &tokenService{secret: []byte(secret), duration: duration, now: time.Now}
}

func (s *tokenService) Issue(session models.Session) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"userId":   session.UserID,
		"email":    session.Email,
		"loggedIn": session.LoggedIn,
		"isAdmin":  session.IsAdmin,
		"exp":      now.Add(s.duration).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

func (s *tokenService) Parse(tokenString string) (models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Session{}, ErrInvalidToken
	}

	userID, _ := claims["userId"].(string)
	email, _ := claims["email"].(string)
	loggedIn, _ := claims["loggedIn"].(bool)
	isAdmin, _ := claims["isAdmin"].(bool)

	return models.Session{
		UserID:   userID,
		Email:    email,
		LoggedIn: loggedIn,
		IsAdmin:  isAdmin,
	}, nil
}
