package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"wuddevdet/internal/config"
	"wuddevdet/internal/models"
	"wuddevdet/internal/repository"
)

func init() {
	hashCost = bcrypt.MinCost
}

func TestSessionService_ToggleLogin(t *testing.T) {
	sessions := NewSessionService(NewContextIdentity(), nil)

	in := sessions.ToggleLogin(models.Session{})
	assert.True(t, in.LoggedIn)

	admin, err := sessions.ToggleAdmin(in)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role())

	out := sessions.ToggleLogin(admin)
	assert.False(t, out.LoggedIn)
	assert.False(t, out.IsAdmin)
	assert.Equal(t, models.RoleGuest, out.Role())
}

func TestSessionService_ToggleAdminWhileLoggedOut(t *testing.T) {
	sessions := NewSessionService(NewContextIdentity(), nil)

	s, err := sessions.ToggleAdmin(models.Session{})

	assert.ErrorIs(t, err, ErrAdminToggleDisabled)
	assert.False(t, s.IsAdmin)
}

func TestSessionService_ActingAuthor(t *testing.T) {
	ctx := context.Background()
	profiles := repository.NewMemoryProfileRepository()
	sessions := NewSessionService(NewContextIdentity(), profiles)

	member := sessions.ActingAuthor(ctx, models.Session{LoggedIn: true})
	assert.Equal(t, models.Author{ID: CurrentUserID, Name: "Member User", Avatar: models.DefaultAvatar}, member)

	_, err := profiles.SetAvatar(ctx, "u-7", "http://cdn/u7.png")
	require.NoError(t, err)

	admin := sessions.ActingAuthor(ctx, models.Session{UserID: "u-7", LoggedIn: true, IsAdmin: true})
	assert.Equal(t, models.Author{ID: "u-7", Name: "Admin User", Avatar: "http://cdn/u7.png"}, admin)
}

func TestContextIdentity(t *testing.T) {
	identity := NewContextIdentity()

	assert.Equal(t, models.Session{}, identity.Session(context.Background()))

	s := models.Session{LoggedIn: true, Email: "demo@wuddevdet.com"}
	assert.Equal(t, s, identity.Session(WithSession(context.Background(), s)))
}

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	s := models.Session{UserID: CurrentUserID, Email: "demo@wuddevdet.com", LoggedIn: true, IsAdmin: true}

	token, err := tokens.Issue(s)
	require.NoError(t, err)

	parsed, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, s, parsed)
}

func TestTokenService_Rejects(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour)
	token, err := issuer.Issue(models.Session{LoggedIn: true})
	require.NoError(t, err)

	_, err = NewTokenService("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenService("secret", time.Hour).(*tokenService)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue(models.Session{LoggedIn: true})
	require.NoError(t, err)

	_, err = issuer.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newTestAuth(t *testing.T, delay time.Duration) AuthService {
	t.Helper()
	auth, err := NewAuthService(config.Auth{
		LoginDelay:    delay,
		SignupDelay:   delay,
		DemoEmail:     "demo@wuddevdet.com",
		DemoPassword:  "password",
		AdminEmail:    "admin@wuddevdet.com",
		AdminPassword: "adminpass",
	}, NewTokenService("secret", time.Hour))
	require.NoError(t, err)
	return auth
}

func TestAuthService_Login(t *testing.T) {
	auth := newTestAuth(t, 0)
	tokens := NewTokenService("secret", time.Hour)

	tests := []struct {
		name        string
		email       string
		password    string
		expectedErr error
		role        models.Role
	}{
		{name: "demo member", email: "demo@wuddevdet.com", password: "password", role: models.RoleMember},
		{name: "admin", email: "admin@wuddevdet.com", password: "adminpass", role: models.RoleAdmin},
		{name: "wrong password", email: "demo@wuddevdet.com", password: "nope", expectedErr: ErrInvalidCredentials},
		{name: "unknown email", email: "who@x.com", password: "password", expectedErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := auth.Login(context.Background(), tt.email, tt.password).Wait(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, result.Token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.role, result.Session.Role())
			assert.Equal(t, tt.email, result.Session.Email)

			parsed, err := tokens.Parse(result.Token)
			require.NoError(t, err)
			assert.Equal(t, result.Session, parsed)
		})
	}
}

func TestAuthService_NoAdminWithoutPassword(t *testing.T) {
	auth, err := NewAuthService(config.Auth{
		DemoEmail:    "demo@wuddevdet.com",
		DemoPassword: "password",
		AdminEmail:   "admin@wuddevdet.com",
	}, NewTokenService("secret", time.Hour))
	require.NoError(t, err)

	_, err = auth.Login(context.Background(), "admin@wuddevdet.com", "").Wait(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginDelay(t *testing.T) {
	auth := newTestAuth(t, 30*time.Millisecond)

	started := time.Now()
	_, err := auth.Login(context.Background(), "demo@wuddevdet.com", "password").Wait(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(started), 30*time.Millisecond)
}

func TestAuthService_Signup(t *testing.T) {
	auth := newTestAuth(t, 0)

	result, err := auth.Signup(context.Background(), models.SignupInput{
		Name:     "Dana",
		Email:    "dana@x.com",
		Password: "longenough",
		Location: "Detroit",
	}).Wait(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "dana@x.com", result.Email)
	assert.NotEmpty(t, result.Message)

	_, err = auth.Login(context.Background(), "dana@x.com", "longenough").Wait(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
