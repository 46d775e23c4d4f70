package shop

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ramadhan-rush/internal/save"
)

func withBank(n int) save.Snapshot {
	s := save.Default()
	s.BankedScore = n
	return s
}

func TestCatalog(t *testing.T) {
	items := Catalog()
	if len(items) != 9 {
		t.Fatalf("Catalog() has %d items, expected 9", len(items))
	}
	fx := 0
	for _, it := range items {
		if it.Kind == KindFx {
			fx++
		}
	}
	if fx != 7 {
		t.Errorf("catalog has %d effects, expected 7", fx)
	}
}

func TestBuy(t *testing.T) {
	full := withBank(10000)
	full.Consumables.Life = 5

	double := withBank(10000)
	double.Consumables.Double = 1

	owned := withBank(10000)
	owned.OwnedItems = append(owned.OwnedItems, "fx_star")

	tests := []struct {
		name    string
		in      save.Snapshot
		id      string
		wantErr error
		bank    int
	}{
		{"life", withBank(150), ExtraLife, nil, 50},
		{"double", withBank(300), DoubleScore, nil, 0},
		{"effect", withBank(700), "fx_fire", nil, 0},
		{"too poor", withBank(99), ExtraLife, ErrInsufficientFunds, 99},
		{"life cap", full, ExtraLife, ErrLimitReached, 10000},
		{"double cap", double, DoubleScore, ErrLimitReached, 10000},
		{"owned effect", owned, "fx_star", ErrAlreadyOwned, 10000},
		{"unknown", withBank(10000), "fx_rainbow", ErrUnknownItem, 10000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Buy(tc.in, tc.id)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Buy(%s) error = %v, expected %v", tc.id, err, tc.wantErr)
			}
			if out.BankedScore != tc.bank {
				t.Errorf("BankedScore = %d, expected %d", out.BankedScore, tc.bank)
			}
		})
	}
}

func TestBuyDoesNotMutateInput(t *testing.T) {
	in := withBank(500)
	out, err := Buy(in, "fx_star")
	if err != nil {
		t.Fatal(err)
	}
	if in.Owns("fx_star") || in.BankedScore != 500 {
		t.Error("Buy() modified its input")
	}
	if !out.Owns("fx_star") {
		t.Error("Buy() result should own fx_star")
	}
}

func TestToggleEquip(t *testing.T) {
	s := withBank(0)
	s.OwnedItems = append(s.OwnedItems, "fx_moon", "fx_love")

	s, err := ToggleEquip(s, "fx_moon")
	if err != nil || s.EquippedFx() != "fx_moon" {
		t.Fatalf("equip: fx = %q, err = %v", s.EquippedFx(), err)
	}

	s, _ = ToggleEquip(s, "fx_love")
	if s.EquippedFx() != "fx_love" {
		t.Errorf("switching effect: fx = %q, expected fx_love", s.EquippedFx())
	}

	s, _ = ToggleEquip(s, "fx_love")
	if s.EquippedFx() != "" {
		t.Errorf("second toggle should unequip, fx = %q", s.EquippedFx())
	}

	if _, err := ToggleEquip(s, "fx_fire"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("ToggleEquip(unowned) error = %v, expected ErrNotOwned", err)
	}
	if _, err := ToggleEquip(s, ExtraLife); !errors.Is(err, ErrNotEquippable) {
		t.Errorf("ToggleEquip(consumable) error = %v, expected ErrNotEquippable", err)
	}
}

func TestSpendForRun(t *testing.T) {
	s := withBank(0)
	s.Consumables = save.Consumables{Life: 2, Double: 1}

	out, bonus, double := SpendForRun(s)
	if bonus != 1 || !double {
		t.Errorf("SpendForRun() = (%d, %v), expected (1, true)", bonus, double)
	}
	if out.Consumables != (save.Consumables{Life: 1, Double: 0}) {
		t.Errorf("Consumables after spend = %+v", out.Consumables)
	}

	_, bonus, double = SpendForRun(save.Default())
	if bonus != 0 || double {
		t.Errorf("SpendForRun(empty) = (%d, %v), expected (0, false)", bonus, double)
	}
}

func TestFxSymbol(t *testing.T) {
	if _, _, ok := FxSymbol(save.NoFx); ok {
		t.Error("fx_none should have no particle symbol")
	}
	if r, _, ok := FxSymbol("fx_star"); !ok || r != '*' {
		t.Errorf("FxSymbol(fx_star) = %q, %v", r, ok)
	}
	if _, _, ok := FxSymbol(ExtraLife); ok {
		t.Error("consumables have no tap effect")
	}
}
