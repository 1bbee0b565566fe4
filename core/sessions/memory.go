package sessions

import (
	"context"
	"sync"
)

// Memory keeps sessions in a process-wide map. All sessions are lost on
// restart, which invalidates every cookie out there.
type Memory struct {
	mu     sync.RWMutex
	tokens map[string]int
}

func NewMemory() *Memory {
	return &Memory{tokens: make(map[string]int)}
}

func (s *Memory) Create(ctx context.Context, userID int) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()

	return token, nil
}

func (s *Memory) Resolve(ctx context.Context, token string) (int, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	s.mu.RLock()
	userID, ok := s.tokens[token]
	s.mu.RUnlock()

	return userID, ok, nil
}
