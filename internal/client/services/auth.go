// Package services contains application services for the postkeeper client.
// This file defines credential housekeeping: storing the bearer token pasted
// by the user, serving it to the HTTP client and clearing it on logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/postkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/postkeeper/internal/common"
	"github.com/dmitrijs2005/postkeeper/internal/dbx"
)

// AuthService manages the locally held bearer credential.
//
// Contract:
//   - Login: persist the token together with the server it belongs to.
//   - Logout: remove both.
//   - Token: return the stored token, or "" if there is none or it was
//     stored for a different server. It satisfies client.TokenSource.
//   - LoggedIn: report whether Token would return a credential.
type AuthService interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	LoggedIn(ctx context.Context) (bool, error)
}

// authService keeps the credential in the local SQLite metadata table.
type authService struct {
	db        *sql.DB
	serverURL string
}

// NewAuthService binds the service to the local DB and the server URL the
// client is configured for.
func NewAuthService(db *sql.DB, serverURL string) AuthService {
	return &authService{db: db, serverURL: serverURL}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// Login stores token and the current server URL in a single transaction.
func (a *authService) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		return common.ErrEmptyToken
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.MetadataKeyAccessToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.MetadataKeyServerURL, a.serverURL)
	})
}

// Logout drops everything stored for the credential.
func (a *authService) Logout(ctx context.Context) error {
	return a.getMetadataRepo().Clear(ctx)
}

func (a *authService) Token(ctx context.Context) (string, error) {
	repo := a.getMetadataRepo()

	token, err := repo.Get(ctx, common.MetadataKeyAccessToken)
	if errors.Is(err, common.ErrorNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	server, err := repo.Get(ctx, common.MetadataKeyServerURL)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return "", err
	}
	if server != "" && server != a.serverURL {
		return "", nil
	}
	return token, nil
}

func (a *authService) LoggedIn(ctx context.Context) (bool, error) {
	token, err := a.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}
