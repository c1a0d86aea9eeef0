package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/seiyeolo/park-golf-master/internal/store"
)

// Store reads and writes profiles and the current-user pointer.
type Store struct {
	kv     store.KV
	logger zerolog.Logger
}

// NewStore creates a profile Store over kv.
func NewStore(kv store.KV, logger zerolog.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// Current returns the active profile, or nil when no user is set.
// A pointer whose profile record is missing or unreadable yields a bare
// profile carrying only the name.
func (s *Store) Current(ctx context.Context) (*Profile, error) {
	name, ok, err := s.kv.Get(ctx, store.Global(store.KeyCurrentUser))
	if err != nil {
		return nil, fmt.Errorf("read current user: %w", err)
	}
	if !ok || name == "" {
		return nil, nil
	}
	p := s.load(ctx, name)
	return &p, nil
}

// Use makes name the active user, creating its profile on first use.
// Other users' records are left untouched.
func (s *Store) Use(ctx context.Context, name string) (*Profile, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	key := store.User(name, store.KeyProfile)
	_, exists, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	p := s.load(ctx, name)
	if !exists {
		if err := s.write(ctx, p); err != nil {
			return nil, err
		}
		s.logger.Info().Str("user", name).Msg("profile created")
	}

	if err := s.kv.Set(ctx, store.Global(store.KeyCurrentUser), name); err != nil {
		return nil, fmt.Errorf("write current user: %w", err)
	}
	return &p, nil
}

// Save updates an existing profile in place. The name is the namespace and
// cannot change here; use Use to switch users.
func (s *Store) Save(ctx context.Context, p Profile) error {
	name, err := NormalizeName(p.Name)
	if err != nil {
		return err
	}
	p.Name = name
	if err := ValidateExamDate(p.ExamDate); err != nil {
		return err
	}
	return s.write(ctx, p)
}

// Clear forgets the current-user pointer, returning to NoProfile. Profile
// data stays in its namespace.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, store.Global(store.KeyCurrentUser)); err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}
	return nil
}

// List returns every known user name.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.kv.Namespaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return names, nil
}

func (s *Store) load(ctx context.Context, name string) Profile {
	fallback := Profile{Name: name}

	raw, ok, err := s.kv.Get(ctx, store.User(name, store.KeyProfile))
	if err != nil {
		s.logger.Warn().Err(err).Str("user", name).Msg("read profile failed, using defaults")
		return fallback
	}
	if !ok {
		return fallback
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Warn().Err(err).Str("user", name).Msg("malformed profile record, using defaults")
		return fallback
	}
	// The namespace is authoritative for the name.
	p.Name = name
	return p
}

func (s *Store) write(ctx context.Context, p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.kv.Set(ctx, store.User(p.Name, store.KeyProfile), string(data)); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
