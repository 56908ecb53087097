// Package storage provides the filesystem primitives used by the report manager:
// existence checks, directory creation, whole-file copies, synced writes,
// directory listing and content digests.
package storage

import (
	"crypto/md5" // #nosec G501 -- change detection only, not a security boundary
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Store performs file operations on an afero filesystem.
type Store struct {
	fs afero.Fs
}

// New creates a Store backed by fs. A nil fs selects the OS filesystem.
func New(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func (s *Store) Exists(path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// Stat returns file information for path, following symbolic links.
func (s *Store) Stat(path string) (os.FileInfo, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info, nil
}

// EnsureDir creates dir and any missing parents.
func (s *Store) EnsureDir(dir string) error {
	if err := s.fs.MkdirAll(dir, dirPerms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// ReadDir lists the entries of dir sorted by name.
func (s *Store) ReadDir(dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}
	return entries, nil
}

// Copy replaces the content of dst with the content of src.
func (s *Store) Copy(src, dst string) (int64, error) {
	in, err := s.fs.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := s.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerms)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %w", dst, err)
	}

	slog.Debug("copied file", "src", src, "dst", dst, "bytes", n)
	return n, nil
}

// WriteSynced truncates path, writes data and syncs the file before closing it.
func (s *Store) WriteSynced(path string, data []byte) error {
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerms)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// Sync to ensure all data is flushed to disk
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	return f.Close()
}

// Remove deletes path and returns the size it occupied.
func (s *Store) Remove(path string) (int64, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}

	if err := s.fs.Remove(path); err != nil {
		return 0, fmt.Errorf("failed to remove file: %w", err)
	}
	return info.Size(), nil
}

// Digest returns the hex MD5 digest of the file at path.
func (s *Store) Digest(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	sum := md5.Sum(data) // #nosec G401
	return hex.EncodeToString(sum[:]), nil
}

// Changed reports whether the files at a and b have different content.
func (s *Store) Changed(a, b string) (bool, error) {
	da, err := s.Digest(a)
	if err != nil {
		return false, err
	}
	db, err := s.Digest(b)
	if err != nil {
		return false, err
	}
	return da != db, nil
}
