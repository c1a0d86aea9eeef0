// Package study wires the bank, the store and the per-user trackers into the
// single service the CLI and TUI talk to.
package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/seiyeolo/park-golf-master/internal/bank"
	"github.com/seiyeolo/park-golf-master/internal/favorites"
	"github.com/seiyeolo/park-golf-master/internal/gate"
	"github.com/seiyeolo/park-golf-master/internal/logging"
	"github.com/seiyeolo/park-golf-master/internal/profile"
	"github.com/seiyeolo/park-golf-master/internal/selfeval"
	"github.com/seiyeolo/park-golf-master/internal/session"
	"github.com/seiyeolo/park-golf-master/internal/stats"
	"github.com/seiyeolo/park-golf-master/internal/store"
)

// Options configures a Service.
type Options struct {
	Bank       *bank.Bank
	KV         store.KV
	AccessCode string

	// Now and Rand are passed to the session controller; nil means the
	// real clock and a seeded generator.
	Now  func() time.Time
	Rand session.Rand
}

// Service is the study state for the active profile.
type Service struct {
	bank     *bank.Bank
	kv       store.KV
	gate     *gate.Gate
	profiles *profile.Store
	logger   zerolog.Logger
	runID    string
	now      func() time.Time
	rng      session.Rand

	current *profile.Profile
	ws      *workspace
}

// workspace is everything loaded for one user.
type workspace struct {
	eval *selfeval.Tracker
	favs *favorites.Tracker
	ctl  *session.Controller
}

// New builds the service and, when a current user is recorded, opens that
// user's workspace. It logs through the logger carried by ctx.
func New(ctx context.Context, opts Options) (*Service, error) {
	if opts.Bank == nil || opts.KV == nil {
		return nil, fmt.Errorf("study: bank and store are required")
	}
	runID := uuid.NewString()
	logger := logging.FromContext(ctx).With().Str("run_id", runID).Logger()

	s := &Service{
		bank:     opts.Bank,
		kv:       opts.KV,
		gate:     gate.New(ctx, opts.KV, opts.AccessCode, logger),
		profiles: profile.NewStore(opts.KV, logger),
		logger:   logger,
		runID:    runID,
		now:      opts.Now,
		rng:      opts.Rand,
	}
	if s.now == nil {
		s.now = time.Now
	}

	p, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil {
		if err := s.open(ctx, p); err != nil {
			return nil, err
		}
	}
	logger.Info().Stringer("state", s.State()).Int("questions", s.bank.Len()).Msg("study service ready")
	return s, nil
}

// RunID identifies this process in the logs.
func (s *Service) RunID() string { return s.runID }

// Logger returns the run-scoped logger.
func (s *Service) Logger() zerolog.Logger { return s.logger }

func (s *Service) Bank() *bank.Bank { return s.bank }

// Now is the service clock.
func (s *Service) Now() time.Time { return s.now() }

func (s *Service) Gate() *gate.Gate { return s.gate }

// State reports whether a profile is active.
func (s *Service) State() profile.State {
	if s.current == nil {
		return profile.NoProfile
	}
	return profile.ProfileSet
}

// Profile returns the active profile.
func (s *Service) Profile() (profile.Profile, bool) {
	if s.current == nil {
		return profile.Profile{}, false
	}
	return *s.current, true
}

// Profiles lists every stored user name.
func (s *Service) Profiles(ctx context.Context) ([]string, error) {
	return s.profiles.List(ctx)
}

// UseProfile switches to name, creating it on first use, and loads its
// study data. The previous user's data is left as is.
func (s *Service) UseProfile(ctx context.Context, name string) (profile.Profile, error) {
	p, err := s.profiles.Use(ctx, name)
	if err != nil {
		return profile.Profile{}, err
	}
	if err := s.open(ctx, p); err != nil {
		return profile.Profile{}, err
	}
	s.logger.Info().Str("user", p.Name).Msg("profile active")
	return *p, nil
}

// EditProfile updates the active profile's objective and exam date.
func (s *Service) EditProfile(ctx context.Context, objective, examDate string) (profile.Profile, error) {
	if s.current == nil {
		return profile.Profile{}, profile.ErrNoProfile
	}
	p := *s.current
	p.Objective = objective
	p.ExamDate = examDate
	if err := s.profiles.Save(ctx, p); err != nil {
		return profile.Profile{}, err
	}
	s.current = &p
	return p, nil
}

// SignOut forgets the active profile without touching its data.
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.profiles.Clear(ctx); err != nil {
		return err
	}
	s.current = nil
	s.ws = nil
	return nil
}

// Controller returns the active user's session controller.
func (s *Service) Controller() (*session.Controller, error) {
	if s.ws == nil {
		return nil, profile.ErrNoProfile
	}
	return s.ws.ctl, nil
}

// SelfEval returns the active user's self-assessment tracker.
func (s *Service) SelfEval() (*selfeval.Tracker, error) {
	if s.ws == nil {
		return nil, profile.ErrNoProfile
	}
	return s.ws.eval, nil
}

// Favorites returns the active user's favorites.
func (s *Service) Favorites() (*favorites.Tracker, error) {
	if s.ws == nil {
		return nil, profile.ErrNoProfile
	}
	return s.ws.favs, nil
}

// Stats computes the active user's figures.
func (s *Service) Stats() (stats.Summary, error) {
	if s.ws == nil {
		return stats.Summary{}, profile.ErrNoProfile
	}
	return stats.Compute(s.bank, s.ws.eval), nil
}

func (s *Service) open(ctx context.Context, p *profile.Profile) error {
	logger := s.logger.With().Str("user", p.Name).Logger()

	eval, err := selfeval.Load(ctx, s.kv, p.Name, logger)
	if err != nil {
		return fmt.Errorf("load self-assessment: %w", err)
	}
	favs, err := favorites.Load(ctx, s.kv, p.Name, logger)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	ctl, err := session.Open(ctx, session.Deps{
		Bank:      s.bank,
		Gate:      s.gate,
		SelfEval:  eval,
		Favorites: favs,
		KV:        s.kv,
		User:      p.Name,
		Logger:    logger,
		Now:       s.now,
		Rand:      s.rng,
	})
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	s.current = p
	s.ws = &workspace{eval: eval, favs: favs, ctl: ctl}
	return nil
}
