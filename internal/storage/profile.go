package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	"github.com/vovakirdan/ramadhan-rush/internal/save"
)

// ProfileStore binds a Store to one player profile. It is the engine's
// Saver and Recorder for the SQLite backend.
type ProfileStore struct {
	store   *Store
	profile string
	logger  *log.Logger
}

var (
	_ engine.Saver    = (*ProfileStore)(nil)
	_ engine.Recorder = (*ProfileStore)(nil)
)

// Profile returns the view of the store for one profile.
func (s *Store) Profile(name string, logger *log.Logger) *ProfileStore {
	if name == "" {
		name = "default"
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ProfileStore{store: s, profile: name, logger: logger}
}

// Name returns the profile name.
func (p *ProfileStore) Name() string {
	return p.profile
}

// Load returns the stored snapshot; read errors degrade to the default.
func (p *ProfileStore) Load() save.Snapshot {
	snap, err := p.store.LoadSnapshot(p.profile)
	if err != nil {
		p.logger.Warn("using default save", "profile", p.profile, "err", err)
	}
	return snap
}

// Save stores the snapshot.
func (p *ProfileStore) Save(s save.Snapshot) error {
	return p.store.SaveSnapshot(p.profile, s)
}

// RecordRun adds a finished run to the history.
func (p *ProfileStore) RecordRun(r engine.RunResult) error {
	run, err := p.store.AddRun(p.profile, string(r.Difficulty), r.Score, r.Level)
	if err != nil {
		return err
	}
	p.logger.Debug("run recorded", "run", run.RunID, "score", run.Score)
	return nil
}
