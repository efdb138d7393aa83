package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
)

var (
	ErrInvalidName     = errors.New("name cannot be empty or exceed 100 characters")
	ErrInvalidUsername = errors.New("username cannot be empty or exceed 50 characters")
	ErrBioTooLong      = errors.New("bio cannot exceed 500 characters")
)

// ProfileUpdate carries the fields a user may change; nil means unchanged.
type ProfileUpdate struct {
	Name       *string
	Username   *string
	Bio        *string
	ProfilePic *string
}

type ProfileService interface {
	// Author returns the earliest-registered admin, shown on the homepage.
	Author(ctx context.Context) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	Update(ctx context.Context, userID string, in ProfileUpdate) (*model.User, error)
}

type profileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) Author(ctx context.Context) (*model.User, error) {
	return s.users.FirstAdmin(ctx)
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID string, in ProfileUpdate) (*model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" || len(*in.Name) > 100 {
			return nil, ErrInvalidName
		}
		u.Name = *in.Name
	}
	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" || len(*in.Username) > 50 {
			return nil, ErrInvalidUsername
		}
		if *in.Username != u.Username {
			taken, err := s.users.ExistsByUsername(ctx, *in.Username)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrUsernameTaken
			}
			u.Username = *in.Username
		}
	}
	if in.Bio != nil {
		if len(*in.Bio) > 500 {
			return nil, ErrBioTooLong
		}
		u.Bio = *in.Bio
	}
	if in.ProfilePic != nil {
		u.ProfilePic = *in.ProfilePic
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
