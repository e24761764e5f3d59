// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/models"
)

// credentialFileStorage keeps the login pair in a small JSON file readable
// only by the owner.
type credentialFileStorage struct {
	path string
	mu   sync.RWMutex
}

// NewCredentialFileStorage constructs a [CredentialStorage] backed by path.
func NewCredentialFileStorage(path string) CredentialStorage {
	return &credentialFileStorage{path: path}
}

// Load implements [CredentialStorage].
func (s *credentialFileStorage) Load(ctx context.Context) (models.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Credentials{}, ErrCredentialsNotFound
		}
		return models.Credentials{}, fmt.Errorf("read credentials file: %w", err)
	}

	var creds models.Credentials
	if err = json.Unmarshal(data, &creds); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialFileStorage.Load").
			Str("path", s.path).
			Msg("credentials file is corrupted")
		return models.Credentials{}, fmt.Errorf("decode credentials file: %w", err)
	}

	if creds.Username == "" && creds.Password == "" {
		return models.Credentials{}, ErrCredentialsNotFound
	}

	return creds, nil
}

// Save implements [CredentialStorage]. The file is replaced atomically.
func (s *credentialFileStorage) Save(ctx context.Context, c models.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credentials dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}

	if err = os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace credentials file: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "credentialFileStorage.Save").
		Str("username", c.Username).
		Msg("credentials saved")
	return nil
}
