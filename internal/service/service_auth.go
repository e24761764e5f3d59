// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kns/internal/config"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/store"
	"github.com/MKhiriev/go-kns/models"
)

type authService struct {
	credentials store.CredentialStorage
	defaults    models.Credentials
	now         func() time.Time

	logger *logger.Logger
}

// NewAuthService accepts the default pair from cfg while no credentials
// are stored.
func NewAuthService(credentials store.CredentialStorage, cfg config.ClientApp, logger *logger.Logger) AuthService {
	return &authService{
		credentials: credentials,
		defaults: models.Credentials{
			Username: cfg.DefaultUsername,
			Password: cfg.DefaultPassword,
		},
		now:    time.Now,
		logger: logger,
	}
}

func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	expected, err := a.credentials.Load(ctx)
	usingDefaults := false
	switch {
	case errors.Is(err, store.ErrCredentialsNotFound):
		expected = a.defaults
		usingDefaults = true
	case err != nil:
		return models.Session{}, fmt.Errorf("load credentials: %w", err)
	}

	if username != expected.Username || password != expected.Password {
		logger.FromContext(ctx).Warn().Str("username", username).Msg("login rejected")
		return models.Session{}, ErrInvalidCredentials
	}

	return models.Session{
		Username:           username,
		LoggedInAt:         a.now(),
		DefaultCredentials: usingDefaults,
	}, nil
}

func (a *authService) ChangeCredentials(ctx context.Context, username, password, confirm string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	if password != confirm {
		return ErrPasswordsDoNotMatch
	}

	if err := a.credentials.Save(ctx, models.Credentials{Username: username, Password: password}); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("credentials changed")
	return nil
}
