// Package shop implements the between-runs economy: spending banked score
// on consumables and tap effects, and equipping effects.
package shop

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/save"
)

// Kind separates single-run consumables from permanent tap effects.
type Kind string

const (
	KindConsumable Kind = "cons"
	KindFx         Kind = "fx"
)

// Consumable item ids.
const (
	ExtraLife   = "cons_life"
	DoubleScore = "cons_double"
)

// Item is one catalog entry.
type Item struct {
	ID     string
	Kind   Kind
	Name   string
	Desc   string
	Symbol rune
	Color  core.Color
	Cost   int
	Max    int // stock limit for consumables
}

var (
	ErrUnknownItem       = errors.New("shop: unknown item")
	ErrInsufficientFunds = errors.New("shop: not enough banked score")
	ErrLimitReached      = errors.New("shop: stock limit reached")
	ErrAlreadyOwned      = errors.New("shop: already owned")
	ErrNotOwned          = errors.New("shop: item not owned")
	ErrNotEquippable     = errors.New("shop: item cannot be equipped")
)

var catalog = []Item{
	{ID: ExtraLife, Kind: KindConsumable, Name: "Emergency Life", Desc: "+1 life for one run (max 5)", Symbol: '+', Color: core.ColorGood, Cost: 100, Max: 5},
	{ID: DoubleScore, Kind: KindConsumable, Name: "Double Coins", Desc: "2x score on the next run (max 1)", Symbol: '$', Color: core.ColorCyan, Cost: 300, Max: 1},
	{ID: "fx_star", Kind: KindFx, Name: "Blessed Stars", Desc: "Star tap effect", Symbol: '*', Color: core.ColorGold, Cost: 500},
	{ID: "fx_sparkle", Kind: KindFx, Name: "Sparks of Light", Desc: "Sparkle tap effect", Symbol: '+', Color: core.ColorBrightWhite, Cost: 500},
	{ID: "fx_moon", Kind: KindFx, Name: "Crescent Aura", Desc: "Crescent moon tap effect", Symbol: ')', Color: core.ColorYellow, Cost: 600},
	{ID: "fx_ketupat", Kind: KindFx, Name: "Ketupat Aura", Desc: "Ketupat tap effect", Symbol: '#', Color: core.ColorDarkGreen, Cost: 600},
	{ID: "fx_fire", Kind: KindFx, Name: "Fire of Spirit", Desc: "Blazing tap effect", Symbol: '^', Color: core.ColorAmber, Cost: 700},
	{ID: "fx_love", Kind: KindFx, Name: "Ramadhan Love", Desc: "Heart tap effect", Symbol: '♥', Color: core.ColorBrightMagenta, Cost: 700},
	{ID: "fx_water", Kind: KindFx, Name: "Ablution Drops", Desc: "Water drop tap effect", Symbol: '~', Color: core.ColorWater, Cost: 700},
}

// Catalog returns the items in display order.
func Catalog() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an item by id.
func Lookup(id string) (Item, bool) {
	for _, it := range catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// FxSymbol returns the particle symbol and color of a tap effect. ok is
// false for ids that are not effects, including fx_none.
func FxSymbol(id string) (symbol rune, c core.Color, ok bool) {
	it, found := Lookup(id)
	if !found || it.Kind != KindFx {
		return 0, core.ColorDefault, false
	}
	return it.Symbol, it.Color, true
}

// stock returns how many of a consumable the snapshot holds.
func stock(s save.Snapshot, id string) int {
	switch id {
	case ExtraLife:
		return s.Consumables.Life
	case DoubleScore:
		return s.Consumables.Double
	}
	return 0
}

// Buy spends banked score on the item and returns the updated snapshot.
// The input snapshot is never modified.
func Buy(s save.Snapshot, id string) (save.Snapshot, error) {
	it, ok := Lookup(id)
	if !ok {
		return s, fmt.Errorf("%w %q", ErrUnknownItem, id)
	}
	if s.BankedScore < it.Cost {
		return s, ErrInsufficientFunds
	}

	out := s.Clone()
	switch it.Kind {
	case KindConsumable:
		if stock(s, id) >= it.Max {
			return s, ErrLimitReached
		}
		if id == ExtraLife {
			out.Consumables.Life++
		} else {
			out.Consumables.Double++
		}
	case KindFx:
		if s.Owns(id) {
			return s, ErrAlreadyOwned
		}
		out.OwnedItems = append(out.OwnedItems, id)
	}
	out.BankedScore -= it.Cost
	return out, nil
}

// ToggleEquip equips the effect, or unequips it when it is already equipped.
func ToggleEquip(s save.Snapshot, id string) (save.Snapshot, error) {
	it, ok := Lookup(id)
	if !ok {
		return s, fmt.Errorf("%w %q", ErrUnknownItem, id)
	}
	if it.Kind != KindFx {
		return s, ErrNotEquippable
	}
	if !s.Owns(id) {
		return s, ErrNotOwned
	}

	out := s.Clone()
	if out.Equipped[save.SlotFx] == id {
		delete(out.Equipped, save.SlotFx)
	} else {
		out.Equipped[save.SlotFx] = id
	}
	return out, nil
}

// SpendForRun applies the run-start consumables: one extra life and one
// double-score token, when held. It returns the updated snapshot, the
// bonus lives and whether double score is active.
func SpendForRun(s save.Snapshot) (out save.Snapshot, bonusLives int, double bool) {
	out = s.Clone()
	if out.Consumables.Life > 0 {
		out.Consumables.Life--
		bonusLives = 1
	}
	if out.Consumables.Double > 0 {
		out.Consumables.Double--
		double = true
	}
	return out, bonusLives, double
}
