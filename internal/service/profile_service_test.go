package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wuddevdet/internal/models"
	"wuddevdet/internal/repository"
	"wuddevdet/internal/storage"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadAvatar(ctx context.Context, userID string, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, userID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockStorage) DeleteAvatar(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *mockStorage) ObjectName(avatarURL string) (string, bool) {
	args := m.Called(avatarURL)
	return args.String(0), args.Bool(1)
}

type failingProfiles struct{}

func (failingProfiles) GetAvatar(context.Context, string) (string, error) {
	return "", repository.ErrProfileNotFound
}

func (failingProfiles) SetAvatar(context.Context, string, string) (string, error) {
	return "", errors.New("db down")
}

func TestProfileService_UploadAvatar(t *testing.T) {
	ctx := context.Background()
	profiles := repository.NewMemoryProfileRepository()
	store := new(mockStorage)
	svc := NewProfileService(profiles, store)
	session := models.Session{LoggedIn: true}

	store.On("UploadAvatar", ctx, CurrentUserID, "me.png", mock.Anything, int64(3)).
		Return("avatars/currentUser/a.png", "http://cdn/avatars/currentUser/a.png", nil).Once()
	store.On("ObjectName", "").Return("", false).Once()

	url, err := svc.UploadAvatar(ctx, session, "me.png", strings.NewReader("png"), 3)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/avatars/currentUser/a.png", url)

	store.On("UploadAvatar", ctx, CurrentUserID, "me2.png", mock.Anything, int64(3)).
		Return("avatars/currentUser/b.png", "http://cdn/avatars/currentUser/b.png", nil).Once()
	store.On("ObjectName", "http://cdn/avatars/currentUser/a.png").Return("avatars/currentUser/a.png", true).Once()
	store.On("DeleteAvatar", ctx, "avatars/currentUser/a.png").Return(nil).Once()

	_, err = svc.UploadAvatar(ctx, session, "me2.png", strings.NewReader("png"), 3)
	require.NoError(t, err)

	avatar, err := profiles.GetAvatar(ctx, CurrentUserID)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/avatars/currentUser/b.png", avatar)
	store.AssertExpectations(t)
}

func TestProfileService_UploadAvatarStorageDisabled(t *testing.T) {
	svc := NewProfileService(repository.NewMemoryProfileRepository(), storage.Disabled{})

	_, err := svc.UploadAvatar(context.Background(), models.Session{LoggedIn: true}, "me.png", strings.NewReader("x"), 1)

	assert.ErrorIs(t, err, storage.ErrStorageUnavailable)
}

func TestProfileService_UploadAvatarRemovesOrphan(t *testing.T) {
	ctx := context.Background()
	store := new(mockStorage)
	svc := NewProfileService(failingProfiles{}, store)

	store.On("UploadAvatar", ctx, "u-1", "me.png", mock.Anything, int64(1)).
		Return("avatars/u-1/a.png", "http://cdn/avatars/u-1/a.png", nil)
	store.On("DeleteAvatar", ctx, "avatars/u-1/a.png").Return(nil)

	_, err := svc.UploadAvatar(ctx, models.Session{UserID: "u-1", LoggedIn: true}, "me.png", strings.NewReader("x"), 1)

	assert.ErrorContains(t, err, "db down")
	store.AssertExpectations(t)
}
