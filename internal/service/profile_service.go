package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"wuddevdet/internal/models"
	"wuddevdet/internal/repository"
	"wuddevdet/internal/storage"
)

type ProfileService interface {
	UploadAvatar(ctx context.Context, session models.Session, fileName string, file io.Reader, size int64) (string, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	storage  storage.Storage
}

func NewProfileService(profiles repository.ProfileRepository, storage storage.Storage) ProfileService {
	return &profileService{profiles: profiles, storage: storage}
}

// UploadAvatar stores the image and makes it the acting author's avatar.
// The replaced avatar object is removed on a best-effort basis.
func (p *profileService) UploadAvatar(ctx context.Context, session models.Session, fileName string, file io.Reader, size int64) (string, error) {
	userID := session.UserID
	if userID == "" {
		userID = CurrentUserID
	}

	objectName, avatarURL, err := p.storage.UploadAvatar(ctx, userID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("error uploading avatar: %w", err)
	}

	previous, err := p.profiles.SetAvatar(ctx, userID, avatarURL)
	if err != nil {
		if delErr := p.storage.DeleteAvatar(ctx, objectName); delErr != nil {
			log.Printf("Warning: could not remove orphaned avatar %s: %v", objectName, delErr)
		}
		return "", fmt.Errorf("error saving avatar: %w", err)
	}

	if oldObject, ok := p.storage.ObjectName(previous); ok {
		if err := p.storage.DeleteAvatar(ctx, oldObject); err != nil {
			log.Printf("Warning: could not remove previous avatar %s: %v", oldObject, err)
		}
	}

	return avatarURL, nil
}
