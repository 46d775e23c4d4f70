package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/audio/speaker"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
	"github.com/vovakirdan/ramadhan-rush/internal/save"
	"github.com/vovakirdan/ramadhan-rush/internal/storage"
)

const (
	appName       = "ramadhan-rush"
	backendSQLite = "sqlite"
	backendGdata  = "gdata"
)

// appEnv bundles what a playing command needs. Close releases it.
type appEnv struct {
	cfg     config.Config
	logger  *log.Logger
	store   *storage.Store // nil when the database could not be opened
	deps    engine.Deps
	closers []func()
}

func (r *appEnv) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// setup loads the config and opens logging, persistence and sound.
// logOut receives logs when --log-file is not set.
func setup(logOut io.Writer, withSound bool) (*appEnv, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &appEnv{cfg: cfg}
	var closeLog func()
	r.logger, closeLog, err = newLogger(logOut)
	if err != nil {
		return nil, err
	}
	r.closers = append(r.closers, closeLog)

	if err := r.openPersistence(); err != nil {
		r.Close()
		return nil, err
	}
	r.deps.Logger = r.logger
	r.deps.Sound = audio.Nop{}
	if withSound && !flagMute {
		r.openSound()
	}
	return r, nil
}

// newLogger writes to --log-file when set, otherwise to out at warn level.
func newLogger(out io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.NewWithOptions(out, log.Options{
			ReportTimestamp: true,
			Prefix:          "rush",
			Level:           log.WarnLevel,
		}), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "rush",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// openPersistence opens the run database and the save backend. A missing
// database only costs run history; the game still plays.
func (r *appEnv) openPersistence() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		r.logger.Warn("could not open database, runs will not be recorded", "err", err)
	} else {
		r.store = store
		r.closers = append(r.closers, func() { store.Close() })
	}

	switch strings.ToLower(flagSaveBackend) {
	case backendSQLite:
		if r.store != nil {
			profile := r.store.Profile(flagProfile, r.logger)
			r.deps.Saver = profile
			r.deps.Recorder = profile
		}
	case backendGdata:
		gd, err := save.OpenGdata(appName, flagProfile, r.logger)
		if err != nil {
			r.logger.Warn("could not open app data, progress will not be saved", "err", err)
			gd = save.NewGdataStore(nil, flagProfile, r.logger)
		}
		r.deps.Saver = gd
		if r.store != nil {
			r.deps.Recorder = r.store.Profile(flagProfile, r.logger)
		}
	default:
		return fmt.Errorf("unknown save backend %q (want %s or %s)", flagSaveBackend, backendSQLite, backendGdata)
	}
	return nil
}

func (r *appEnv) openSound() {
	synth := speaker.New()
	if err := synth.Init(); err != nil {
		r.logger.Warn("sound disabled", "err", err)
		return
	}
	r.deps.Sound = synth
	r.closers = append(r.closers, synth.Close)
}

// runOptions builds run options from --difficulty and --custom.
func runOptions(difficulty, custom string) (engine.RunOptions, error) {
	id, err := config.ParseProfile(difficulty)
	if err != nil {
		return engine.RunOptions{}, err
	}
	opts := engine.RunOptions{Profile: id}
	if custom == "" {
		return opts, nil
	}
	opts.Custom = true
	for _, v := range strings.Split(custom, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !registry.Exists(registry.VariantID(v)) {
			return engine.RunOptions{}, fmt.Errorf("unknown variant %q (see 'rush variants')", v)
		}
		opts.Variants = append(opts.Variants, registry.VariantID(v))
	}
	return opts, nil
}
