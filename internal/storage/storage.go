// Package storage persists contact-form submissions as JSON files under a
// dated directory tree. The content collections themselves are seed-backed
// and read-only; contact messages are the one thing the site must not lose
// across restarts.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Govt-of-India/mla-portal/internal/models"
)

type ContactStorage struct {
	basePath string
	mu       sync.RWMutex
}

func NewContactStorage(basePath string) (*ContactStorage, error) {
	if err := os.MkdirAll(filepath.Join(basePath, "contact"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create contact storage directory: %w", err)
	}
	return &ContactStorage{basePath: basePath}, nil
}

// SaveSubmission writes one submission under contact/YYYY/MM/DD.
func (s *ContactStorage) SaveSubmission(ctx context.Context, sub models.ContactSubmission) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	datePath := filepath.Join(s.basePath, "contact", sub.CreatedAt.Format("2006/01/02"))
	if err := os.MkdirAll(datePath, 0755); err != nil {
		return fmt.Errorf("failed to create date directory: %w", err)
	}

	data, err := json.MarshalIndent(sub, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	filePath := filepath.Join(datePath, sub.ID+".json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write submission file: %w", err)
	}
	return nil
}

// ListSubmissions returns every stored submission, newest first.
func (s *ContactStorage) ListSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var subs []models.ContactSubmission
	root := filepath.Join(s.basePath, "contact")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		var sub models.ContactSubmission
		if err := json.Unmarshal(data, &sub); err != nil {
			return fmt.Errorf("failed to unmarshal submission %s: %w", path, err)
		}
		subs = append(subs, sub)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking the path: %w", err)
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs, nil
}
