package storage

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	appinv "github.com/bizops/backend/internal/application/inventory"
)

// Object is a stored report
type Object struct {
	Data        []byte
	ContentType string
	StoredAt    time.Time
}

// MemoryReportStorage keeps reports in process memory and links to them
// under BaseURL. It backs the export endpoint when no bucket is configured;
// reports are lost on restart and only the newest MaxObjects are kept.
type MemoryReportStorage struct {
	BaseURL    string
	MaxObjects int

	mu      sync.RWMutex
	objects map[string]Object
	order   []string
}

// NewMemoryReportStorage creates a MemoryReportStorage
func NewMemoryReportStorage(baseURL string, maxObjects int) *MemoryReportStorage {
	if maxObjects <= 0 {
		maxObjects = 20
	}
	return &MemoryReportStorage{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		MaxObjects: maxObjects,
		objects:    make(map[string]Object),
	}
}

// Upload stores a copy of data at key, evicting the oldest report when full
func (s *MemoryReportStorage) Upload(_ context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return errEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[key]; !exists {
		s.order = append(s.order, key)
	}
	s.objects[key] = Object{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
		StoredAt:    time.Now(),
	}
	for len(s.order) > s.MaxObjects {
		delete(s.objects, s.order[0])
		s.order = s.order[1:]
	}
	return nil
}

// GenerateDownloadURL returns BaseURL/key. The link does not actually expire.
func (s *MemoryReportStorage) GenerateDownloadURL(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errEmptyKey
	}
	return s.BaseURL + "/" + (&url.URL{Path: key}).EscapedPath(), time.Now().Add(expiresIn), nil
}

// Get returns the report stored at key
func (s *MemoryReportStorage) Get(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj, ok
}

var _ appinv.AlertStorage = (*MemoryReportStorage)(nil)
