package save

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

const snapshotObject = "profiles"

// GdataStore keeps one snapshot per profile in the platform's app-data
// directory. A nil manager degrades to an in-memory default: Load returns
// the default snapshot and Save does nothing.
type GdataStore struct {
	m       *gdata.Manager
	profile string
	logger  *log.Logger
}

// OpenGdata opens the app-data store for appName.
func OpenGdata(appName, profile string, logger *log.Logger) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("save: cannot open app data for %s: %w", appName, err)
	}
	return NewGdataStore(m, profile, logger), nil
}

// NewGdataStore wraps an existing manager. m may be nil.
func NewGdataStore(m *gdata.Manager, profile string, logger *log.Logger) *GdataStore {
	if profile == "" {
		profile = "default"
	}
	if logger == nil {
		logger = log.Default()
	}
	return &GdataStore{m: m, profile: profile, logger: logger}
}

// Load returns the stored snapshot, or the default one when nothing usable
// is stored.
func (g *GdataStore) Load() Snapshot {
	if g.m == nil || !g.m.ObjectPropExists(snapshotObject, g.profile) {
		return Default()
	}

	data, err := g.m.LoadObjectProp(snapshotObject, g.profile)
	if err != nil {
		g.logger.Warn("cannot read save, using defaults", "profile", g.profile, "err", err)
		return Default()
	}

	s, err := Unmarshal(data)
	if err != nil {
		g.logger.Warn("corrupt save, using defaults", "profile", g.profile, "err", err)
	}
	return s
}

// Save writes the snapshot, replacing whatever was stored.
func (g *GdataStore) Save(s Snapshot) error {
	if g.m == nil {
		return nil
	}

	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := g.m.SaveObjectProp(snapshotObject, g.profile, data); err != nil {
		return fmt.Errorf("save: cannot write profile %s: %w", g.profile, err)
	}
	return nil
}
