// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-kns/internal/logger"
)

// Photo files are named IMG_<uuid>.jpg.
const (
	PhotoFilePrefix = "IMG_"
	PhotoFileExt    = ".jpg"
)

// fileNamer produces unique file names.
type fileNamer interface {
	Name() string
}

// photoFileStorage copies record photos into a private directory so records
// never point at files the user may later move or delete.
type photoFileStorage struct {
	dir   string
	names fileNamer
}

// NewPhotoFileStorage constructs a [PhotoStorage] rooted at dir.
func NewPhotoFileStorage(dir string, names fileNamer) PhotoStorage {
	return &photoFileStorage{dir: dir, names: names}
}

// Save copies src to a freshly named file in dir. A partially written file is
// removed on failure.
func (p *photoFileStorage) Save(ctx context.Context, src io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		log.Err(err).Str("func", "photoFileStorage.Save").Str("dir", p.dir).Msg("failed to create photo directory")
		return "", fmt.Errorf("create photo dir: %w", err)
	}

	path := filepath.Join(p.dir, p.names.Name())
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "photoFileStorage.Save").Str("path", path).Msg("failed to create photo file")
		return "", fmt.Errorf("create photo file: %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		log.Err(err).Str("func", "photoFileStorage.Save").Str("path", path).Msg("failed to copy photo")
		return "", fmt.Errorf("copy photo: %w", err)
	}

	if err = dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close photo file: %w", err)
	}

	log.Debug().Str("func", "photoFileStorage.Save").Str("path", path).Msg("photo stored")
	return path, nil
}

// Remove deletes path. Only files directly inside the photo directory are
// touched.
func (p *photoFileStorage) Remove(ctx context.Context, path string) error {
	if filepath.Dir(filepath.Clean(path)) != filepath.Clean(p.dir) {
		return fmt.Errorf("%w: %s", ErrForeignPhotoPath, path)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "photoFileStorage.Remove").Str("path", path).Msg("failed to remove photo")
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}
