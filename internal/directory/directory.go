package directory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/auth"
)

// Directory holds the known users in process memory. It is the injected
// user-directory capability the notification dispatcher and the HTTP layer
// depend on; the service never authenticates beyond credential lookup here.
type Directory struct {
	mu    sync.RWMutex
	users map[string]*User
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{users: make(map[string]*User)}
}

// Add registers a user. The id must be unique and the role known.
func (d *Directory) Add(ctx context.Context, u User) error {
	if strings.TrimSpace(u.ID) == "" || strings.TrimSpace(u.Name) == "" {
		return ErrInvalidCredentials
	}
	if !u.Role.Valid() {
		return ErrUnknownRole
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[u.ID]; ok {
		return ErrAlreadyExists
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	d.users[u.ID] = &u
	return nil
}

// Get returns a copy of the user with the given id.
func (d *Directory) Get(ctx context.Context, id string) (User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return *u, nil
}

// List returns all users ordered by id.
func (d *Directory) List(ctx context.Context) []User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UsersByRole returns every user holding the given role, ordered by id.
func (d *Directory) UsersByRole(ctx context.Context, role Role) []User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []User
	for _, u := range d.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Authenticate verifies the stored credential for the user and returns the
// identity on success. Real credential policy lives outside the workflow
// engine; this is the opaque external check the engine trusts.
func (d *Directory) Authenticate(ctx context.Context, id, plaintext string) (User, error) {
	d.mu.RLock()
	u, ok := d.users[id]
	d.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(u.PasswordHash, plaintext); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return *u, nil
}
