package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/seiyeolo/park-golf-master/internal/bank"
	"github.com/seiyeolo/park-golf-master/internal/config"
	"github.com/seiyeolo/park-golf-master/internal/logging"
	"github.com/seiyeolo/park-golf-master/internal/profile"
	"github.com/seiyeolo/park-golf-master/internal/store"
	"github.com/seiyeolo/park-golf-master/internal/study"
)

const appName = "parkgolf"

// env is what every command needs: configuration, the store and the
// question bank. The logger travels in the command's context.
type env struct {
	cfg     *config.Config
	kv      store.KV
	bank    *bank.Bank
	logFile string

	closers []io.Closer
}

// setup loads configuration, puts the logger into cmd's context and opens
// the store and bank. With logToFile the logger writes to the log file
// instead of stderr.
func setup(cmd *cobra.Command, logToFile bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}

	logOpts := logging.Options{AppName: appName, Env: cfg.Env, Level: cfg.Log.Level, Out: os.Stderr}
	if logToFile {
		logOpts.File = cfg.Log.File
		if logOpts.File == "" {
			if logOpts.File, err = logging.DefaultFile(); err != nil {
				return nil, fmt.Errorf("resolve log file: %w", err)
			}
		}
	}
	logger, logCloser, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	cmd.SetContext(logging.IntoContext(cmd.Context(), logger))
	e := &env{cfg: cfg, logFile: logOpts.File, closers: []io.Closer{logCloser}}

	if e.bank, err = loadBank(cfg.BankPath); err != nil {
		e.Close()
		return nil, err
	}

	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		e.kv = store.NewMemory()
		logger.Debug().Msg("using in-memory store")
		return e, nil
	}
	dbPath, err := store.DefaultDBPath(cfg.DBPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.kv = st
	e.closers = append(e.closers, st)
	logger.Debug().Str("db", dbPath).Msg("store opened")
	return e, nil
}

func loadBank(path string) (*bank.Bank, error) {
	if path == "" {
		return bank.Default()
	}
	return bank.LoadFile(path)
}

// service builds the study service for the recorded current profile. ctx
// must be the command context setup filled in.
func (e *env) service(ctx context.Context) (*study.Service, error) {
	return study.New(ctx, study.Options{
		Bank:       e.bank,
		KV:         e.kv,
		AccessCode: e.cfg.AccessCode,
	})
}

// Close releases the store first, then the log file.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	return errors.Join(errs...)
}

// resolveUser returns the --user flag, normalized, or the current profile's
// name when the flag is unset.
func resolveUser(cmd *cobra.Command, svc *study.Service) (string, error) {
	if name, _ := cmd.Flags().GetString("user"); name != "" {
		return profile.NormalizeName(name)
	}
	p, ok := svc.Profile()
	if !ok {
		return "", fmt.Errorf("%w: run parkgolf to create one, or pass --user", profile.ErrNoProfile)
	}
	return p.Name, nil
}
