package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/koppilab/cryodaq-go/models"
)

type ConfigRecord struct {
	ID  string
	Raw []byte
	P   *models.PARAMETERS
}

// ConfigStore keeps uploaded measurement configs in memory for the
// lifetime of the process; nothing here needs to survive a restart.
type ConfigStore struct {
	mu sync.RWMutex
	m  map[string]*ConfigRecord
}

func NewConfigStore() *ConfigStore {
	return &ConfigStore{m: make(map[string]*ConfigRecord)}
}

func (s *ConfigStore) Put(raw []byte, p *models.PARAMETERS) (*ConfigRecord, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	rec := &ConfigRecord{ID: id, Raw: raw, P: p}
	s.mu.Lock()
	s.m[id] = rec
	s.mu.Unlock()
	return rec, nil
}

func (s *ConfigStore) Get(id string) (*ConfigRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.m[id]
	return r, ok
}

func newID() (string, error) {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
