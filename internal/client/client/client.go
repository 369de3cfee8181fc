package client

import (
	"context"

	"github.com/dmitrijs2005/postkeeper/internal/client/models"
)

// Client is the remote post source used by the services.
type Client interface {
	// ListMine returns one page (1-based) of the caller's own posts,
	// newest first.
	ListMine(ctx context.Context, page int) (*models.Page, error)
	// Search returns posts matching query in relevance order.
	Search(ctx context.Context, query string) ([]models.Post, error)
	DeletePost(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, p models.Profile) error
	Close() error
}
