package client

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/postkeeper/internal/client/models"
)

type fakeClient struct {
	Client
	searchErr error
	deleteErr error
	closed    bool
}

func (f *fakeClient) Search(ctx context.Context, q string) ([]models.Post, error) {
	return []models.Post{{ID: q}}, f.searchErr
}
func (f *fakeClient) ListMine(ctx context.Context, page int) (*models.Page, error) {
	return &models.Page{}, nil
}
func (f *fakeClient) DeletePost(ctx context.Context, id string) error { return f.deleteErr }
func (f *fakeClient) UpdateProfile(ctx context.Context, p models.Profile) error {
	return &StatusError{Code: 500, Message: "x"}
}
func (f *fakeClient) Close() error { f.closed = true; return nil }

func TestInstrument_CountsByOperationAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	fake := &fakeClient{deleteErr: ErrUnauthorized}
	c := Instrument(fake, m)
	ctx := context.Background()

	_, err := c.Search(ctx, "a")
	require.NoError(t, err)
	_, err = c.Search(ctx, "b")
	require.NoError(t, err)
	_, err = c.ListMine(ctx, 1)
	require.NoError(t, err)
	require.ErrorIs(t, c.DeletePost(ctx, "x"), ErrUnauthorized)
	require.ErrorIs(t, c.UpdateProfile(ctx, models.Profile{Bio: "b"}), ErrUnavailable)

	fake.searchErr = errors.New("weird")
	_, _ = c.Search(ctx, "c")

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("search", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("search", "error")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("list_mine", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("delete_post", "unauthorized")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("update_profile", "unavailable")))
	require.Equal(t, 4, testutil.CollectAndCount(m.duration))

	require.NoError(t, c.Close())
	require.True(t, fake.closed)
}

func TestNewMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	require.Panics(t, func() { NewMetrics(reg) })
}
