package auth_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

type memoryStorage struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*auth.User
	passwords map[uuid.UUID][]byte
	links     map[string]uuid.UUID

	failStoreHash error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		users:     map[uuid.UUID]*auth.User{},
		passwords: map[uuid.UUID][]byte{},
		links:     map[string]uuid.UUID{},
	}
}

func (m *memoryStorage) CreateUser(_ context.Context, u *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return auth.ErrEmailTaken
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memoryStorage) GetUserByID(_ context.Context, id uuid.UUID) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, auth.ErrUserNotFound
}

func (m *memoryStorage) GetUserByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (m *memoryStorage) DeleteUser(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	delete(m.passwords, id)
	return nil
}

func (m *memoryStorage) StorePasswordHash(_ context.Context, id uuid.UUID, hash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failStoreHash != nil {
		return m.failStoreHash
	}
	m.passwords[id] = hash
	return nil
}

func (m *memoryStorage) GetPasswordHash(_ context.Context, id uuid.UUID) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.passwords[id]; ok {
		return h, nil
	}
	return nil, auth.ErrNoPassword
}

func (m *memoryStorage) StoreOAuthLink(_ context.Context, provider, providerUserID string, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[provider+":"+providerUserID] = id
	return nil
}

func (m *memoryStorage) GetUserByOAuth(ctx context.Context, provider, providerUserID string) (*auth.User, error) {
	m.mu.Lock()
	id, ok := m.links[provider+":"+providerUserID]
	m.mu.Unlock()
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return m.GetUserByID(ctx, id)
}

func (m *memoryStorage) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}
