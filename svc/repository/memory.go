package repository

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

// MemorySignatures is an in-memory SignatureStore for tests and local runs.
type MemorySignatures struct {
	mu   sync.RWMutex
	sigs map[uuid.UUID]Signature
	now  func() time.Time
}

// NewMemorySignatures creates an empty MemorySignatures.
func NewMemorySignatures() *MemorySignatures {
	return &MemorySignatures{sigs: map[uuid.UUID]Signature{}, now: time.Now}
}

var _ SignatureStore = (*MemorySignatures)(nil)

func (m *MemorySignatures) Create(_ context.Context, sig *Signature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sig.ID == uuid.Nil {
		sig.ID = uuid.New()
	}
	if _, ok := m.sigs[sig.ID]; ok {
		return ErrConflict
	}
	now := m.now().UTC()
	sig.CreatedAt, sig.UpdatedAt = now, now
	sig.IsDefault = len(m.ownedLocked(sig.OwnerID)) == 0
	m.sigs[sig.ID] = *sig
	return nil
}

func (m *MemorySignatures) Get(_ context.Context, ownerID, id uuid.UUID) (*Signature, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sigs[id]
	if !ok || s.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemorySignatures) List(_ context.Context, ownerID uuid.UUID) ([]Signature, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := m.ownedLocked(ownerID)
	slices.SortFunc(out, func(a, b Signature) int {
		if a.IsDefault != b.IsDefault {
			if a.IsDefault {
				return -1
			}
			return 1
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

func (m *MemorySignatures) Update(_ context.Context, sig *Signature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.sigs[sig.ID]
	if !ok || cur.OwnerID != sig.OwnerID {
		return ErrNotFound
	}
	cur.Title = sig.Title
	cur.Record = sig.Record
	cur.UpdatedAt = m.now().UTC()
	m.sigs[sig.ID] = cur
	*sig = cur
	return nil
}

func (m *MemorySignatures) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sigs[id]
	if !ok || s.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.sigs, id)
	if !s.IsDefault {
		return nil
	}
	rest := m.ownedLocked(ownerID)
	if len(rest) == 0 {
		return nil
	}
	next := slices.MaxFunc(rest, func(a, b Signature) int { return a.UpdatedAt.Compare(b.UpdatedAt) })
	next.IsDefault = true
	m.sigs[next.ID] = next
	return nil
}

func (m *MemorySignatures) SetDefault(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	target, ok := m.sigs[id]
	if !ok || target.OwnerID != ownerID {
		return ErrNotFound
	}
	for k, s := range m.sigs {
		if s.OwnerID == ownerID && s.IsDefault {
			s.IsDefault = false
			m.sigs[k] = s
		}
	}
	target.IsDefault = true
	m.sigs[id] = target
	return nil
}

func (m *MemorySignatures) ownedLocked(ownerID uuid.UUID) []Signature {
	var out []Signature
	for _, s := range m.sigs {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out
}

// MemoryProfiles is an in-memory ProfileStore.
type MemoryProfiles struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]Profile
}

// NewMemoryProfiles creates an empty MemoryProfiles.
func NewMemoryProfiles() *MemoryProfiles {
	return &MemoryProfiles{profiles: map[uuid.UUID]Profile{}}
}

var _ ProfileStore = (*MemoryProfiles)(nil)

func (m *MemoryProfiles) Get(_ context.Context, userID uuid.UUID) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemoryProfiles) Upsert(_ context.Context, p *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.UpdatedAt = time.Now().UTC()
	m.profiles[p.UserID] = *p
	return nil
}

// MemoryTestData is an in-memory TestDataStore.
type MemoryTestData struct {
	mu    sync.RWMutex
	items map[uuid.UUID]TestData
}

// NewMemoryTestData creates an empty MemoryTestData.
func NewMemoryTestData() *MemoryTestData {
	return &MemoryTestData{items: map[uuid.UUID]TestData{}}
}

var _ TestDataStore = (*MemoryTestData)(nil)

func (m *MemoryTestData) Create(_ context.Context, td *TestData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if td.ID == uuid.Nil {
		td.ID = uuid.New()
	}
	now := time.Now().UTC()
	td.CreatedAt, td.UpdatedAt = now, now
	m.items[td.ID] = *td
	return nil
}

func (m *MemoryTestData) Get(_ context.Context, ownerID, id uuid.UUID) (*TestData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	td, ok := m.items[id]
	if !ok || td.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return &td, nil
}

func (m *MemoryTestData) List(_ context.Context, ownerID uuid.UUID) ([]TestData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []TestData
	for _, td := range m.items {
		if td.OwnerID == ownerID {
			out = append(out, td)
		}
	}
	slices.SortFunc(out, func(a, b TestData) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (m *MemoryTestData) Update(_ context.Context, td *TestData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.items[td.ID]
	if !ok || cur.OwnerID != td.OwnerID {
		return ErrNotFound
	}
	cur.Name, cur.Record, cur.UpdatedAt = td.Name, td.Record, time.Now().UTC()
	m.items[td.ID] = cur
	*td = cur
	return nil
}

func (m *MemoryTestData) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	td, ok := m.items[id]
	if !ok || td.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// MemoryUsers is an in-memory auth.Storage.
type MemoryUsers struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]auth.User
	passwords map[uuid.UUID][]byte
	links     map[[2]string]uuid.UUID
}

// NewMemoryUsers creates an empty MemoryUsers.
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{
		users:     map[uuid.UUID]auth.User{},
		passwords: map[uuid.UUID][]byte{},
		links:     map[[2]string]uuid.UUID{},
	}
}

var _ auth.Storage = (*MemoryUsers)(nil)

var errUserNotFound = errors.Join(ErrNotFound, auth.ErrUserNotFound)

func (m *MemoryUsers) CreateUser(_ context.Context, u *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return auth.ErrEmailTaken
		}
	}
	m.users[u.ID] = *u
	return nil
}

func (m *MemoryUsers) GetUserByID(_ context.Context, id uuid.UUID) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, errUserNotFound
	}
	return &u, nil
}

func (m *MemoryUsers) GetUserByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, errUserNotFound
}

func (m *MemoryUsers) DeleteUser(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	delete(m.passwords, id)
	for k, v := range m.links {
		if v == id {
			delete(m.links, k)
		}
	}
	return nil
}

func (m *MemoryUsers) StorePasswordHash(_ context.Context, userID uuid.UUID, hash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passwords[userID] = slices.Clone(hash)
	return nil
}

func (m *MemoryUsers) GetPasswordHash(_ context.Context, userID uuid.UUID) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.passwords[userID]
	if !ok {
		return nil, auth.ErrNoPassword
	}
	return h, nil
}

func (m *MemoryUsers) StoreOAuthLink(_ context.Context, provider, providerUserID string, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{provider, providerUserID}
	if _, ok := m.links[key]; !ok {
		m.links[key] = userID
	}
	return nil
}

func (m *MemoryUsers) GetUserByOAuth(ctx context.Context, provider, providerUserID string) (*auth.User, error) {
	m.mu.RLock()
	id, ok := m.links[[2]string{provider, providerUserID}]
	m.mu.RUnlock()
	if !ok {
		return nil, errUserNotFound
	}
	return m.GetUserByID(ctx, id)
}
