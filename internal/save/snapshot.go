// Package save defines the persisted player state (banked score, shop
// inventory, equipped effect, consumables) and the gdata-backed store.
package save

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// NoFx is the always-owned "no tap effect" item.
const NoFx = "fx_none"

// SlotFx is the equip slot for tap effects.
const SlotFx = "fx"

// Consumables are single-run boosts bought in the shop.
type Consumables struct {
	Life   int `yaml:"cons_life" json:"cons_life"`
	Double int `yaml:"cons_double" json:"cons_double"`
}

// Snapshot is everything that survives between runs.
type Snapshot struct {
	BankedScore int               `yaml:"banked_score" json:"banked_score"`
	OwnedItems  []string          `yaml:"owned_items" json:"owned_items"`
	Equipped    map[string]string `yaml:"equipped" json:"equipped"` // slot -> item id; absent means nothing equipped
	Consumables Consumables       `yaml:"consumables" json:"consumables"`
}

// Default returns the state of a brand new player.
func Default() Snapshot {
	return Snapshot{
		OwnedItems: []string{NoFx},
		Equipped:   map[string]string{},
	}
}

// Normalize repairs a snapshot read from an untrusted source: negative
// counters become zero, duplicates are dropped, NoFx is always owned and
// equipped items must be owned.
func (s Snapshot) Normalize() Snapshot {
	out := Snapshot{
		BankedScore: max(s.BankedScore, 0),
		Consumables: Consumables{
			Life:   max(s.Consumables.Life, 0),
			Double: max(s.Consumables.Double, 0),
		},
		Equipped: make(map[string]string, len(s.Equipped)),
	}

	seen := map[string]bool{NoFx: true}
	out.OwnedItems = append(out.OwnedItems, NoFx)
	for _, id := range s.OwnedItems {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out.OwnedItems = append(out.OwnedItems, id)
	}

	for slot, id := range s.Equipped {
		if id != "" && seen[id] {
			out.Equipped[slot] = id
		}
	}
	return out
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.OwnedItems = append([]string(nil), s.OwnedItems...)
	out.Equipped = make(map[string]string, len(s.Equipped))
	for k, v := range s.Equipped {
		out.Equipped[k] = v
	}
	return out
}

// Owns reports whether the item is in the inventory.
func (s Snapshot) Owns(id string) bool {
	for _, o := range s.OwnedItems {
		if o == id {
			return true
		}
	}
	return false
}

// EquippedFx returns the equipped tap effect id, or "" when none.
func (s Snapshot) EquippedFx() string {
	return s.Equipped[SlotFx]
}

// Marshal encodes the snapshot as YAML with sorted inventory.
func (s Snapshot) Marshal() ([]byte, error) {
	c := s.Normalize()
	sort.Strings(c.OwnedItems[1:])
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("save: cannot encode snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a snapshot. Corrupt data is reported as an error
// together with the default snapshot, so callers can log and carry on.
func Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("save: corrupt snapshot: %w", err)
	}
	return s.Normalize(), nil
}
