package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/postkeeper/internal/client/client"
	"github.com/dmitrijs2005/postkeeper/internal/client/models"
	"github.com/dmitrijs2005/postkeeper/internal/common"
)

// ProfileService updates the caller's profile settings.
type ProfileService interface {
	Update(ctx context.Context, p models.Profile) error
}

type profileService struct {
	client  client.Client
	timeout time.Duration
}

// NewProfileService returns a ProfileService bounding each call by timeout.
// A non-positive timeout falls back to DefaultRequestTimeout.
func NewProfileService(c client.Client, timeout time.Duration) ProfileService {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &profileService{client: c, timeout: timeout}
}

// Update trims the fields and rejects a profile with nothing set or with a
// bio longer than common.MaxBioLength characters.
func (s *profileService) Update(ctx context.Context, p models.Profile) error {
	p = models.Profile{
		DisplayName: strings.TrimSpace(p.DisplayName),
		Email:       strings.TrimSpace(p.Email),
		Bio:         strings.TrimSpace(p.Bio),
	}
	if p.IsEmpty() {
		return common.ErrEmptyProfile
	}
	if utf8.RuneCountInString(p.Bio) > common.MaxBioLength {
		return common.ErrBioTooLong
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.client.UpdateProfile(ctx, p)
}
