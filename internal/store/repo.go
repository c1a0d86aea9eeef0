package store

import (
	"context"
	"errors"
)

// GlobalNamespace holds process-wide keys that belong to no user.
const GlobalNamespace = ""

// Key names. Global keys live in GlobalNamespace; the rest are per user.
const (
	KeyCurrentUser = "current_user"
	KeyAuth        = "auth"

	KeyProfile   = "profile"
	KeyFavorites = "favorites"
	KeyProgress  = "progress"
	KeySelfEval  = "self_eval"
)

// ErrEmptyNamespace is returned when a per-user key is built without a user.
var ErrEmptyNamespace = errors.New("empty user namespace")

// Key addresses one value: a namespace (the user name, or GlobalNamespace)
// and a name within it.
type Key struct {
	Namespace string
	Name      string
}

// Global returns a process-wide key.
func Global(name string) Key {
	return Key{Namespace: GlobalNamespace, Name: name}
}

// User returns a key scoped to user.
func User(user, name string) Key {
	return Key{Namespace: user, Name: name}
}

func (k Key) String() string {
	if k.Namespace == GlobalNamespace {
		return k.Name
	}
	return k.Namespace + "/" + k.Name
}

// KV is a synchronous string store addressed by Key. There are no
// transactions; the last write wins.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key Key) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key Key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key Key) error

	// Namespaces lists the user namespaces that hold at least one key,
	// in ascending order. GlobalNamespace is never included.
	Namespaces(ctx context.Context) ([]string, error)
}
