// Package filestore guarda cada instantánea en un archivo <clave>.json dentro de un
// directorio, sobre un afero.Fs (disco en producción, memoria en tests).
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/OnKodr-dev/inventory-app/internal/domain/repository"
)

var _ repository.SnapshotStore = (*Store)(nil)

// Store almacén de instantáneas en archivos.
type Store struct {
	fs  afero.Fs
	dir string
}

// New crea el directorio si no existe.
func New(fsys afero.Fs, dir string) (*Store, error) {
	if ok, _ := afero.DirExists(fsys, dir); ok {
		return &Store{fs: fsys, dir: dir}, nil
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de instantáneas: %w", err)
	}
	return &Store{fs: fsys, dir: dir}, nil
}

// NewOS atajo sobre el sistema de archivos real.
func NewOS(dir string) (*Store, error) {
	return New(afero.NewOsFs(), dir)
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	return raw, nil
}

// Save escribe en un temporal y renombra, para no dejar un archivo a medias.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("renombrar %s: %w", tmp, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar %s: %w", path, err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("clave de instantánea inválida: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
