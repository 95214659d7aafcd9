// Package inventory holds the cosmetic item catalog and the per-session
// owned/equipped state for each category.
package inventory

import (
	"errors"

	"github.com/vovakirdan/studyquest/internal/economy"
)

// Category is a cosmetic slot on the character.
type Category string

const (
	CategoryHat       Category = "hat"
	CategoryAccessory Category = "accessory"
)

// Categories lists all slots in display order.
var Categories = []Category{CategoryHat, CategoryAccessory}

// DefaultItem is the free item every category starts with. It is not
// listed in the catalog and cannot be purchased.
const DefaultItem = "Default"

var (
	// ErrUnknownItem is returned when an item is not in the catalog.
	ErrUnknownItem = errors.New("inventory: item not in catalog")

	// ErrAlreadyOwned is returned when purchasing an owned item.
	ErrAlreadyOwned = errors.New("inventory: item already owned")

	// ErrNotOwned is returned when equipping an item that is not owned.
	ErrNotOwned = errors.New("inventory: item not owned")
)

// Item is one purchasable cosmetic: a name, a display glyph, and a price.
type Item struct {
	Name  string
	Glyph string
	Price int
}

// Catalog is the static, read-only list of purchasable items per
// category, in display order.
type Catalog map[Category][]Item

// Items returns the catalog entries for a category, in display order.
func (c Catalog) Items(cat Category) []Item {
	return c[cat]
}

// Find looks up a catalog item by category and name.
func (c Catalog) Find(cat Category, name string) (Item, bool) {
	for _, it := range c[cat] {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Store tracks owned and equipped items. Invariants: every category
// owns DefaultItem, and the equipped item is always owned.
type Store struct {
	catalog  Catalog
	owned    map[Category]map[string]bool
	equipped map[Category]string
}

// NewStore creates a store over the given catalog, with every category
// owning and wearing the default item.
func NewStore(catalog Catalog) *Store {
	s := &Store{
		catalog:  catalog,
		owned:    make(map[Category]map[string]bool),
		equipped: make(map[Category]string),
	}
	for _, cat := range Categories {
		s.owned[cat] = map[string]bool{DefaultItem: true}
		s.equipped[cat] = DefaultItem
	}
	return s
}

// Catalog returns the store's catalog.
func (s *Store) Catalog() Catalog {
	return s.catalog
}

// Owns reports whether the item is owned in the category.
func (s *Store) Owns(cat Category, name string) bool {
	return s.owned[cat][name]
}

// Owned returns the owned item names for a category: DefaultItem first,
// then catalog order.
func (s *Store) Owned(cat Category) []string {
	names := []string{DefaultItem}
	for _, it := range s.catalog[cat] {
		if s.owned[cat][it.Name] {
			names = append(names, it.Name)
		}
	}
	return names
}

// Equipped returns the currently equipped item name for a category.
func (s *Store) Equipped(cat Category) string {
	return s.equipped[cat]
}

// Purchase buys a catalog item: the price is debited and the item added
// to the owned set. On any failure the ledger and inventory are
// unchanged. Equip state is unaffected by purchase.
func (s *Store) Purchase(cat Category, name string, ledger *economy.Ledger) error {
	item, ok := s.catalog.Find(cat, name)
	if !ok {
		return ErrUnknownItem
	}
	if s.owned[cat][name] {
		return ErrAlreadyOwned
	}
	if err := ledger.Debit(item.Price); err != nil {
		return err
	}
	s.owned[cat][name] = true
	return nil
}

// Equip marks an owned item as the one worn in its category. Equipping
// the already-equipped item is a no-op.
func (s *Store) Equip(cat Category, name string) error {
	if !s.owned[cat][name] {
		return ErrNotOwned
	}
	s.equipped[cat] = name
	return nil
}

// Visual returns the display glyph for the equipped item in a category,
// or a blank placeholder for the default item. Pure projection.
func (s *Store) Visual(cat Category) string {
	name := s.equipped[cat]
	if name == DefaultItem {
		return " "
	}
	if item, ok := s.catalog.Find(cat, name); ok && item.Glyph != "" {
		return item.Glyph
	}
	// Fall back to the item's leading rune.
	for _, r := range name {
		return string(r)
	}
	return " "
}
