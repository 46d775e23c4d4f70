// Package engine runs the meta-loop: it owns the screen state machine,
// lives and score, the difficulty progression between rounds, and the
// active variant. Frontends drive it through Loop and read it for
// rendering; nothing here touches a terminal or a window.
package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
	"github.com/vovakirdan/ramadhan-rush/internal/save"
	"github.com/vovakirdan/ramadhan-rush/internal/shop"
)

// Saver persists the player's snapshot. Load never fails; missing or
// corrupt data comes back as save.Default().
type Saver interface {
	Load() save.Snapshot
	Save(s save.Snapshot) error
}

// Sound plays a cue without waiting for it.
type Sound interface {
	Play(c audio.Cue)
}

// RunResult describes a finished run.
type RunResult struct {
	Difficulty config.ProfileID
	Score      int
	Level      int
}

// Recorder stores finished runs for the scoreboard.
type Recorder interface {
	RecordRun(r RunResult) error
}

// Deps are the engine's collaborators. Every field is optional.
type Deps struct {
	Saver    Saver
	Sound    Sound
	Recorder Recorder
	Logger   *log.Logger
}

// RunOptions select how a run is played.
type RunOptions struct {
	Profile config.ProfileID
	// Custom runs use Variants as an allow-list, never score, and never
	// spend or bank anything.
	Custom   bool
	Variants []registry.VariantID
}

// Engine is the simulation context of one player. It is not safe for
// concurrent use; a frontend owns it on a single goroutine.
type Engine struct {
	cfg       config.Config
	saver     Saver
	sound     Sound
	recorder  Recorder
	logger    *log.Logger
	rng       *rand.Rand
	particles *entity.Particles
	round     *round

	screen     Screen
	profile    config.DifficultyProfile
	score      int
	lives      int
	level      int
	multiplier float64
	clock      float64

	variantID     registry.VariantID
	variantDef    config.VariantDef
	variant       registry.Variant
	roundTimer    float64
	roundDuration float64
	stateTimer    float64

	history   []registry.VariantID
	available []registry.VariantID
	double    bool
	custom    bool
	scenery   Scenery
	snapshot  save.Snapshot
}

// New creates an engine on the menu screen. seed drives gameplay; the
// particle system gets its own stream derived from it.
func New(cfg config.Config, deps Deps, seed int64) *Engine {
	e := &Engine{
		cfg:       cfg,
		saver:     deps.Saver,
		sound:     deps.Sound,
		recorder:  deps.Recorder,
		logger:    deps.Logger,
		rng:       rand.New(rand.NewSource(seed)),
		particles: entity.NewParticles(seed+1, cfg.Engine.MaxParticles),
		screen:    ScreenMenu,
		lives:     cfg.Engine.BaseLives,
		level:     1,
	}
	if e.sound == nil {
		e.sound = audio.Nop{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.round = &round{e: e}
	e.snapshot = e.load()
	return e
}

func (e *Engine) load() save.Snapshot {
	if e.saver == nil {
		return save.Default()
	}
	return e.saver.Load()
}

func (e *Engine) persist() {
	if e.saver == nil {
		return
	}
	if err := e.saver.Save(e.snapshot); err != nil {
		e.logger.Warn("save failed", "err", err)
	}
}

// Start begins a run. It is only legal on the menu; the game-over screen
// must go through ReturnToMenu first.
func (e *Engine) Start(opts RunOptions) error {
	if e.screen != ScreenMenu {
		return fmt.Errorf("%w: start from %s", ErrIllegalTransition, e.screen)
	}
	prof, ok := e.cfg.Profile(opts.Profile)
	if !ok {
		return fmt.Errorf("engine: unknown profile %q", opts.Profile)
	}
	avail := e.candidates(opts)
	if len(avail) == 0 {
		return errors.New("engine: no playable variants")
	}

	e.snapshot = e.load()
	e.lives = e.cfg.Engine.BaseLives
	e.double = false
	if !opts.Custom {
		var bonus int
		e.snapshot, bonus, e.double = shop.SpendForRun(e.snapshot)
		e.lives += bonus
		e.persist()
	}

	e.profile = prof
	e.custom = opts.Custom
	e.available = avail
	e.score = 0
	e.level = 1
	e.multiplier = prof.MultiplierStart

	first := avail[e.rng.Intn(len(avail))]
	e.history = remember(e.history[:0], first, e.cfg.Engine.HistorySize)
	e.logger.Info("run started", "profile", prof.ID, "custom", e.custom, "variants", len(avail), "lives", e.lives, "double", e.double)
	e.transitionTo(first)
	return nil
}

// candidates resolves the playable variant set for a run.
func (e *Engine) candidates(opts RunOptions) []registry.VariantID {
	var ids []registry.VariantID
	if opts.Custom {
		for _, id := range dedupe(opts.Variants) {
			if e.playable(id) {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) > 0 {
		return ids
	}
	for _, id := range e.cfg.VariantIDs() {
		if e.playable(registry.VariantID(id)) {
			ids = append(ids, registry.VariantID(id))
		}
	}
	return dedupe(ids)
}

func (e *Engine) playable(id registry.VariantID) bool {
	_, ok := e.cfg.Variant(string(id))
	return ok && registry.Exists(id)
}

// ReturnToMenu leaves the game-over screen.
func (e *Engine) ReturnToMenu() error {
	if e.screen != ScreenGameOver {
		return fmt.Errorf("%w: menu from %s", ErrIllegalTransition, e.screen)
	}
	e.screen = ScreenMenu
	return nil
}

// Update advances the simulation by dt milliseconds. It does nothing on
// the menu and game-over screens.
func (e *Engine) Update(dt float64, p core.PointerSignal) {
	e.clock += dt
	switch e.screen {
	case ScreenTransition:
		e.stateTimer -= dt
		if e.stateTimer <= 0 {
			e.beginRound()
		}
	case ScreenPlay:
		e.play(dt, p)
	}
}

func (e *Engine) play(dt float64, p core.PointerSignal) {
	e.roundTimer -= dt
	e.particles.Update(dt)

	if p.Tapped {
		if sym, c, ok := shop.FxSymbol(e.snapshot.EquippedFx()); ok {
			e.particles.Burst(p.X, p.Y, c, e.cfg.Engine.TapFxCount, sym)
		}
	}

	e.variant.Update(e.round, dt, p)
	if e.screen != ScreenPlay {
		return
	}
	if e.variant.Complete() {
		e.roundTimer = 0
	}
	if e.roundTimer > 0 {
		return
	}

	if e.variant.TimeoutPenalty() {
		e.loseLife()
		e.particles.Burst(core.LogicalW/2, core.LogicalH/2, core.ColorDanger, 20, '!')
	}
	if e.screen == ScreenPlay {
		e.advance()
	}
}

// transitionTo shows the card for id and clears the field.
func (e *Engine) transitionTo(id registry.VariantID) {
	e.variantID = id
	e.variantDef, _ = e.cfg.Variant(string(id))
	e.variant = nil
	e.particles.Clear()
	e.screen = ScreenTransition
	e.stateTimer = e.cfg.Engine.TransitionMs
	e.logger.Debug("next round", "variant", id, "level", e.level, "multiplier", e.multiplier)
}

func (e *Engine) beginRound() {
	v, err := registry.Create(e.variantID)
	if err != nil {
		e.logger.Error("cannot create variant", "variant", e.variantID, "err", err)
		e.advance()
		return
	}
	e.screen = ScreenPlay
	e.roundDuration = e.profile.RoundDuration(e.variantDef)
	e.roundTimer = e.roundDuration
	if !e.profile.Hard {
		e.scenery = Scenery(e.rng.Intn(int(sceneryCount)))
	}
	e.variant = v
	v.Init(e.round)
}

// advance raises the difficulty and queues the next variant.
func (e *Engine) advance() {
	e.level++
	e.multiplier += e.profile.MultiplierGrowth
	next := pickNext(e.rng, e.available, e.history)
	e.history = remember(e.history, next, e.cfg.Engine.HistorySize)
	e.transitionTo(next)
}

func (e *Engine) addScore(n int) {
	if e.screen != ScreenPlay || e.custom {
		return
	}
	if e.double {
		n *= 2
	}
	e.score += n
}

func (e *Engine) loseLife() {
	if e.screen != ScreenPlay {
		return
	}
	e.lives--
	e.sound.Play(audio.CueHit)
	if e.lives <= 0 {
		e.gameOver()
	}
}

func (e *Engine) gameOver() {
	e.screen = ScreenGameOver
	e.variant = nil
	e.logger.Info("game over", "profile", e.profile.ID, "score", e.score, "level", e.level, "custom", e.custom)
	if e.custom {
		return
	}

	e.snapshot.BankedScore += e.score
	e.persist()
	if e.recorder != nil {
		res := RunResult{Difficulty: e.profile.ID, Score: e.score, Level: e.level}
		if err := e.recorder.RecordRun(res); err != nil {
			e.logger.Warn("cannot record run", "err", err)
		}
	}
}

// Buy purchases a shop item with banked score and saves the result.
func (e *Engine) Buy(id string) error {
	s, err := shop.Buy(e.snapshot, id)
	if err != nil {
		return err
	}
	e.snapshot = s
	e.persist()
	return nil
}

// ToggleEquip equips or unequips a tap effect and saves the result.
func (e *Engine) ToggleEquip(id string) error {
	s, err := shop.ToggleEquip(e.snapshot, id)
	if err != nil {
		return err
	}
	e.snapshot = s
	e.persist()
	return nil
}

// Screen returns the current screen.
func (e *Engine) Screen() Screen { return e.screen }

// Score returns the run score.
func (e *Engine) Score() int { return e.score }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Level returns the 1-based round number.
func (e *Engine) Level() int { return e.level }

// Multiplier returns the current difficulty multiplier.
func (e *Engine) Multiplier() float64 { return e.multiplier }

// Clock returns the engine clock in milliseconds.
func (e *Engine) Clock() float64 { return e.clock }

// Hard reports whether the run uses the hard profile.
func (e *Engine) Hard() bool { return e.profile.Hard }

// Custom reports whether the run is a custom practice run.
func (e *Engine) Custom() bool { return e.custom }

// Double reports whether double score is active.
func (e *Engine) Double() bool { return e.double }

// Profile returns the run's difficulty profile.
func (e *Engine) Profile() config.DifficultyProfile { return e.profile }

// Scenery returns the backdrop of the current round.
func (e *Engine) Scenery() Scenery { return e.scenery }

// History returns the most recent variants, oldest first.
func (e *Engine) History() []registry.VariantID {
	return append([]registry.VariantID(nil), e.history...)
}

// Available returns the run's candidate variants.
func (e *Engine) Available() []registry.VariantID {
	return append([]registry.VariantID(nil), e.available...)
}

// VariantID returns the id of the current or upcoming variant.
func (e *Engine) VariantID() registry.VariantID { return e.variantID }

// VariantDef returns the catalog entry of the current or upcoming variant.
func (e *Engine) VariantDef() config.VariantDef { return e.variantDef }

// Variant returns the running variant, or nil outside PLAY.
func (e *Engine) Variant() registry.Variant { return e.variant }

// RoundTimer returns the remaining round time in milliseconds.
func (e *Engine) RoundTimer() float64 { return e.roundTimer }

// TimeRatio returns the fraction of the current timer left: the round
// timer during PLAY, the card timer during TRANSITION.
func (e *Engine) TimeRatio() float64 {
	switch e.screen {
	case ScreenPlay:
		if e.roundDuration <= 0 {
			return 0
		}
		return math.Max(0, e.roundTimer/e.roundDuration)
	case ScreenTransition:
		if e.cfg.Engine.TransitionMs <= 0 {
			return 0
		}
		return math.Max(0, e.stateTimer/e.cfg.Engine.TransitionMs)
	}
	return 0
}

// Particles returns the cosmetic particle system.
func (e *Engine) Particles() *entity.Particles { return e.particles }

// Snapshot returns a copy of the player's persistent data.
func (e *Engine) Snapshot() save.Snapshot { return e.snapshot.Clone() }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config { return e.cfg }
