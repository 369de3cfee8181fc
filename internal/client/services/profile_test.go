package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/postkeeper/internal/client/client"
	"github.com/dmitrijs2005/postkeeper/internal/client/models"
	"github.com/dmitrijs2005/postkeeper/internal/common"
)

type profileClient struct {
	client.Client
	got         *models.Profile
	err         error
	hasDeadline bool
}

func (f *profileClient) UpdateProfile(ctx context.Context, p models.Profile) error {
	f.got = &p
	_, f.hasDeadline = ctx.Deadline()
	return f.err
}

func TestProfileUpdate_TrimsAndDelegates(t *testing.T) {
	fc := &profileClient{}
	svc := NewProfileService(fc, time.Second)

	err := svc.Update(context.Background(), models.Profile{DisplayName: "  Ann ", Bio: "hi\n"})
	require.NoError(t, err)
	require.Equal(t, &models.Profile{DisplayName: "Ann", Bio: "hi"}, fc.got)
	require.True(t, fc.hasDeadline)
}

func TestProfileUpdate_RequiresAField(t *testing.T) {
	fc := &profileClient{}
	svc := NewProfileService(fc, 0)

	err := svc.Update(context.Background(), models.Profile{DisplayName: "  ", Email: "\t"})
	require.ErrorIs(t, err, common.ErrEmptyProfile)
	require.Nil(t, fc.got)
}

func TestProfileUpdate_BioLength(t *testing.T) {
	fc := &profileClient{}
	svc := NewProfileService(fc, time.Second)
	ctx := context.Background()

	err := svc.Update(ctx, models.Profile{Bio: strings.Repeat("a", common.MaxBioLength+1)})
	require.ErrorIs(t, err, common.ErrBioTooLong)
	require.Nil(t, fc.got)

	// counted in characters, and after trimming
	bio := strings.Repeat("ж", common.MaxBioLength)
	require.NoError(t, svc.Update(ctx, models.Profile{Bio: "  " + bio + "\n"}))
	require.Equal(t, bio, fc.got.Bio)
}

func TestProfileUpdate_PropagatesClientError(t *testing.T) {
	fc := &profileClient{err: client.ErrUnauthorized}
	svc := NewProfileService(fc, time.Second)

	err := svc.Update(context.Background(), models.Profile{Email: "ann@example.com"})
	require.ErrorIs(t, err, client.ErrUnauthorized)
}
