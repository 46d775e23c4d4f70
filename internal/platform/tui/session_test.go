package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/all"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
	"github.com/vovakirdan/ramadhan-rush/internal/save"
	"github.com/vovakirdan/ramadhan-rush/internal/storage"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

type memSaver struct {
	snap save.Snapshot
}

func (m *memSaver) Load() save.Snapshot { return m.snap.Clone() }

func (m *memSaver) Save(s save.Snapshot) error {
	m.snap = s.Clone()
	return nil
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func send(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionStartsRunFromMenu(t *testing.T) {
	m := NewSessionModel(SessionOptions{Config: config.Default(), Runtime: testRuntime()})
	if m.view != viewMenu {
		t.Fatalf("view = %v, expected menu", m.view)
	}

	m = send(m, keyEnter)

	if m.view != viewGame {
		t.Fatalf("view after Enter = %v, expected game", m.view)
	}
	e := m.Engine()
	if e.Screen() != engine.ScreenTransition {
		t.Errorf("Screen() = %v, expected TRANSITION", e.Screen())
	}
	if e.Profile().ID != config.ProfileCasual {
		t.Errorf("Profile() = %q, expected casual", e.Profile().ID)
	}
}

func TestSessionAutoStart(t *testing.T) {
	m := NewSessionModel(SessionOptions{
		Config:  config.Default(),
		Runtime: testRuntime(),
		Start:   &engine.RunOptions{Profile: config.ProfileHard},
	})
	if m.view != viewGame {
		t.Fatalf("view = %v, expected game", m.view)
	}
	if !m.Engine().Hard() {
		t.Error("Hard() = false, expected true")
	}
}

func TestSessionStartErrorStaysOnMenu(t *testing.T) {
	m := NewSessionModel(SessionOptions{
		Config:  config.Default(),
		Runtime: testRuntime(),
		Start:   &engine.RunOptions{Profile: "nightmare"},
	})
	if m.view != viewMenu {
		t.Fatalf("view = %v, expected menu", m.view)
	}
	if !strings.Contains(m.View(), "nightmare") {
		t.Errorf("View() does not mention the failed profile:\n%s", m.View())
	}
}

func TestSessionShopRoundTrip(t *testing.T) {
	m := NewSessionModel(SessionOptions{Config: config.Default(), Runtime: testRuntime()})

	// Play Casual, Play Hard, Custom Run, Shop, Quit
	m = send(m, keyDown, keyDown, keyDown, keyEnter)
	if m.view != viewShop {
		t.Fatalf("view = %v, expected shop", m.view)
	}

	m = send(m, keyEnter)
	if got := m.shop.Status(); got != "Not enough banked score." {
		t.Errorf("Status() = %q, expected insufficient funds", got)
	}

	m = send(m, keyEsc)
	if m.view != viewMenu {
		t.Errorf("view after Esc = %v, expected menu", m.view)
	}
}

func TestSessionHidesScoresWithoutStore(t *testing.T) {
	m := NewSessionModel(SessionOptions{Config: config.Default(), Runtime: testRuntime()})
	for _, it := range m.menu.items {
		if it.Choice == ChoiceScores {
			t.Fatal("menu lists High Scores without a run source")
		}
	}

	store, err := storage.Open(t.TempDir() + "/rush.db")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	m = NewSessionModel(SessionOptions{Config: config.Default(), Runtime: testRuntime(), Runs: store})
	found := false
	for _, it := range m.menu.items {
		found = found || it.Choice == ChoiceScores
	}
	if !found {
		t.Error("menu does not list High Scores with a run source")
	}
}

func TestShopBuyAndEquip(t *testing.T) {
	saver := &memSaver{snap: save.Default()}
	saver.snap.BankedScore = 1000
	e := engine.New(config.Default(), engine.Deps{Saver: saver}, 1)

	m := NewShopModel(e, 100, 40)
	// cons_life, cons_double, fx_star
	for _, msg := range []tea.Msg{keyDown, keyDown} {
		next, _ := m.Update(msg)
		m = next.(ShopModel)
	}

	next, _ := m.Update(keyEnter)
	m = next.(ShopModel)
	if got := m.Status(); got != "Bought Blessed Stars." {
		t.Fatalf("Status() after buy = %q", got)
	}
	if saver.snap.BankedScore != 500 {
		t.Errorf("saved BankedScore = %d, expected 500", saver.snap.BankedScore)
	}

	next, _ = m.Update(runes("e"))
	m = next.(ShopModel)
	if got := m.Status(); got != "Equipped Blessed Stars." {
		t.Errorf("Status() after equip = %q", got)
	}
	if got := saver.snap.EquippedFx(); got != "fx_star" {
		t.Errorf("saved EquippedFx() = %q, expected fx_star", got)
	}
}

func newGame(t *testing.T) GameModel {
	t.Helper()
	e := engine.New(config.Default(), engine.Deps{}, 1)
	gm, err := NewGameModel(e, engine.RunOptions{Profile: config.ProfileCasual}, testRuntime())
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}
	return gm
}

func TestGameModelMouseTap(t *testing.T) {
	gm := newGame(t)

	press := tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	next, _ := gm.Update(press)
	gm = next.(GameModel)

	expected := gm.config.ToLogical(40, 10)
	p := gm.loop.Taps().Take()
	if !p.Tapped || p.X != expected.X || p.Y != expected.Y {
		t.Errorf("tap = %+v, expected at %+v", p, expected)
	}
	if gm.Cursor() != expected {
		t.Errorf("Cursor() = %+v, expected %+v", gm.Cursor(), expected)
	}

	ignored := []tea.MouseMsg{
		{X: 40, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: 40, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, // help bar
	}
	for _, msg := range ignored {
		next, _ = gm.Update(msg)
		gm = next.(GameModel)
		if p := gm.loop.Taps().Take(); p.Tapped {
			t.Errorf("mouse %+v produced tap %+v", msg, p)
		}
	}
}

func TestGameModelKeyboardCursor(t *testing.T) {
	gm := newGame(t)

	for _, msg := range []tea.Msg{keyRight, runes("s"), keySpace} {
		next, _ := gm.Update(msg)
		gm = next.(GameModel)
	}

	p := gm.loop.Taps().Take()
	if !p.Tapped || p.X != 425 || p.Y != 325 {
		t.Errorf("tap = %+v, expected at (425, 325)", p)
	}
}

func TestGameModelCursorClamped(t *testing.T) {
	gm := newGame(t)
	for range 100 {
		next, _ := gm.Update(runes("a"))
		gm = next.(GameModel)
	}
	if gm.Cursor().X != 0 {
		t.Errorf("Cursor().X = %v, expected 0", gm.Cursor().X)
	}
}

func TestCustomOptions(t *testing.T) {
	cfg := config.Default()
	m := NewCustomModel(cfg, 80)
	for _, msg := range []tea.Msg{keyDown, keySpace, keyRight, keyEnter} {
		next, _ := m.Update(msg)
		m = next.(CustomModel)
	}

	if !m.Confirmed() {
		t.Fatal("Confirmed() = false, expected true")
	}
	opts := m.Options()
	if !opts.Custom {
		t.Error("Options().Custom = false, expected true")
	}
	if opts.Profile != cfg.Profiles[1].ID {
		t.Errorf("Options().Profile = %q, expected %q", opts.Profile, cfg.Profiles[1].ID)
	}
	expected := registry.VariantID(cfg.Variants[1].ID)
	if len(opts.Variants) != 1 || opts.Variants[0] != expected {
		t.Errorf("Options().Variants = %v, expected [%s]", opts.Variants, expected)
	}
}

type fakeRuns struct {
	queried []string
}

func (f *fakeRuns) TopRuns(difficulty string, limit int) ([]storage.Run, error) {
	f.queried = append(f.queried, difficulty)
	return []storage.Run{{Profile: "amir", Difficulty: difficulty, Score: 120, Level: 4}}, nil
}

func TestScoreboardTabs(t *testing.T) {
	src := &fakeRuns{}
	m := NewScoreboardModel(src, config.Default().Profiles, 100, 30)

	for _, msg := range []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyShiftTab}} {
		next, _ := m.Update(msg)
		m = next.(ScoreboardModel)
	}

	expected := []string{"", "casual", "hard", "casual"}
	if strings.Join(src.queried, ",") != strings.Join(expected, ",") {
		t.Errorf("queried = %q, expected %q", src.queried, expected)
	}
	if len(m.Runs()) != 1 {
		t.Errorf("len(Runs()) = %d, expected 1", len(m.Runs()))
	}

	next, _ := m.Update(keyEsc)
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("IsGoingBack() = false after Esc")
	}
}
