// Package gate decides which questions an unauthenticated learner may see.
package gate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/seiyeolo/park-golf-master/internal/store"
)

// FreeLimit is the number of leading questions, in bank order, open without
// an access code.
const FreeLimit = 10

const grantedValue = "true"

var (
	// ErrDenied is returned when a global index lies past the free limit.
	ErrDenied = errors.New("access code required")
	// ErrInvalidCode is returned by Authenticate on a mismatch.
	ErrInvalidCode = errors.New("invalid access code")
)

// Gate holds the process-wide authenticated flag.
type Gate struct {
	kv            store.KV
	logger        zerolog.Logger
	secret        string
	authenticated bool
}

// New loads the persisted flag. A read failure leaves the gate locked.
func New(ctx context.Context, kv store.KV, secret string, logger zerolog.Logger) *Gate {
	g := &Gate{kv: kv, logger: logger, secret: secret}
	v, ok, err := kv.Get(ctx, store.Global(store.KeyAuth))
	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("read auth flag failed, gate locked")
	case ok && v == grantedValue:
		g.authenticated = true
	}
	return g
}

// Authenticated reports whether the access code has been accepted.
func (g *Gate) Authenticated() bool { return g.authenticated }

// Allows reports whether the question at globalIndex may be shown.
func (g *Gate) Allows(globalIndex int) bool {
	return g.authenticated || globalIndex < FreeLimit
}

// Check is Allows as an error.
func (g *Gate) Check(globalIndex int) error {
	if g.Allows(globalIndex) {
		return nil
	}
	return fmt.Errorf("%w: question %d", ErrDenied, globalIndex+1)
}

// Authenticate compares code to the secret, ignoring case and surrounding
// space. On a match the gate opens for good; a failed write is returned but
// the gate stays open for this process.
func (g *Gate) Authenticate(ctx context.Context, code string) error {
	if g.authenticated {
		return nil
	}
	fold := cases.Fold()
	if g.secret == "" || fold.String(strings.TrimSpace(code)) != fold.String(strings.TrimSpace(g.secret)) {
		g.logger.Info().Msg("access code rejected")
		return ErrInvalidCode
	}

	g.authenticated = true
	g.logger.Info().Msg("access code accepted")
	if err := g.kv.Set(ctx, store.Global(store.KeyAuth), grantedValue); err != nil {
		return fmt.Errorf("persist auth flag: %w", err)
	}
	return nil
}
