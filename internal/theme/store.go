package theme

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// LoadTokens reads a YAML override file on top of the defaults. Keys missing
// from the file keep their default value.
func LoadTokens(path string) (Tokens, error) {
	tokens := DefaultTokens()

	data, err := os.ReadFile(path)
	if err != nil {
		return tokens, fmt.Errorf("read theme tokens %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &tokens); err != nil {
		return DefaultTokens(), fmt.Errorf("parse theme tokens %s: %w", path, err)
	}

	return tokens, nil
}

// Store holds the current tokens. It is safe for concurrent use.
type Store struct {
	path string

	mu     sync.RWMutex
	tokens Tokens
}

// NewStore creates a store backed by the YAML file at path. An empty path
// serves the defaults and never reloads.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, tokens: DefaultTokens()}
	if path == "" {
		return s, nil
	}

	tokens, err := LoadTokens(path)
	if err != nil {
		return nil, err
	}
	s.tokens = tokens
	return s, nil
}

// Tokens returns the current tokens.
func (s *Store) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

// Reload re-reads the override file. On failure the previous tokens stay in place.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	tokens, err := LoadTokens(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()
	return nil
}

// Watch reloads the tokens whenever the override file is written, created or
// renamed into place. It watches the parent directory so editors that replace
// the file atomically are picked up. Watch returns once the watcher is running;
// it stops when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("theme watcher: %w", err)
	}

	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return fmt.Errorf("theme watcher: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
					continue
				}
				if err := s.Reload(); err != nil {
					slog.Warn("theme tokens reload failed, keeping previous tokens", "path", s.path, "error", err)
					continue
				}
				slog.Info("theme tokens reloaded", "path", s.path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("theme watcher error", "error", err)
			}
		}
	}()

	return nil
}
