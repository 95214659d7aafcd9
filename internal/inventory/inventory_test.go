package inventory

import (
	"errors"
	"testing"

	"github.com/vovakirdan/studyquest/internal/economy"
)

func testCatalog() Catalog {
	return Catalog{
		CategoryHat: {
			{Name: "Cap", Glyph: "c", Price: 100},
			{Name: "Crown", Glyph: "k", Price: 500},
		},
		CategoryAccessory: {
			{Name: "Glasses", Glyph: "g", Price: 80},
		},
	}
}

// checkInvariants verifies that every equipped item is owned and the
// default item is always owned.
func checkInvariants(t *testing.T, s *Store) {
	t.Helper()
	for _, cat := range Categories {
		if !s.Owns(cat, DefaultItem) {
			t.Errorf("Category %s lost the default item", cat)
		}
		if !s.Owns(cat, s.Equipped(cat)) {
			t.Errorf("Category %s equips unowned item %q", cat, s.Equipped(cat))
		}
	}
}

func TestNewStoreStartsWithDefaults(t *testing.T) {
	s := NewStore(testCatalog())

	for _, cat := range Categories {
		if got := s.Equipped(cat); got != DefaultItem {
			t.Errorf("Equipped(%s) = %q, want %q", cat, got, DefaultItem)
		}
	}
	checkInvariants(t, s)
}

func TestPurchase(t *testing.T) {
	s := NewStore(testCatalog())
	led := economy.NewLedger()
	led.Credit(100)

	if err := s.Purchase(CategoryHat, "Cap", led); err != nil {
		t.Fatalf("Purchase() failed: %v", err)
	}
	if led.Balance() != 0 {
		t.Errorf("Balance = %d, want 0 after exact-price purchase", led.Balance())
	}
	if !s.Owns(CategoryHat, "Cap") {
		t.Error("Purchased item not in owned set")
	}
	// Purchase must not change what is equipped
	if got := s.Equipped(CategoryHat); got != DefaultItem {
		t.Errorf("Purchase changed equipped item to %q", got)
	}
	checkInvariants(t, s)
}

func TestPurchaseInsufficientFundsLeavesState(t *testing.T) {
	s := NewStore(testCatalog())
	led := economy.NewLedger()
	led.Credit(99)

	err := s.Purchase(CategoryHat, "Cap", led)
	if !errors.Is(err, economy.ErrInsufficientFunds) {
		t.Errorf("Purchase() = %v, want ErrInsufficientFunds", err)
	}
	if led.Balance() != 99 {
		t.Errorf("Balance changed on rejected purchase: %d", led.Balance())
	}
	if s.Owns(CategoryHat, "Cap") {
		t.Error("Rejected purchase still added the item")
	}
	checkInvariants(t, s)
}

func TestPurchaseUnknownItem(t *testing.T) {
	s := NewStore(testCatalog())
	led := economy.NewLedger()
	led.Credit(1000)

	if err := s.Purchase(CategoryHat, "Helmet", led); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Purchase(unknown) = %v, want ErrUnknownItem", err)
	}
	if led.Balance() != 1000 {
		t.Errorf("Balance changed on unknown item: %d", led.Balance())
	}
}

func TestPurchaseAlreadyOwned(t *testing.T) {
	s := NewStore(testCatalog())
	led := economy.NewLedger()
	led.Credit(300)

	if err := s.Purchase(CategoryHat, "Cap", led); err != nil {
		t.Fatalf("Purchase() failed: %v", err)
	}
	if err := s.Purchase(CategoryHat, "Cap", led); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("Repeat purchase = %v, want ErrAlreadyOwned", err)
	}
	if led.Balance() != 200 {
		t.Errorf("Balance = %d, want 200 (charged once)", led.Balance())
	}
}

func TestEquip(t *testing.T) {
	s := NewStore(testCatalog())
	led := economy.NewLedger()
	led.Credit(100)
	s.Purchase(CategoryHat, "Cap", led)

	if err := s.Equip(CategoryHat, "Cap"); err != nil {
		t.Fatalf("Equip() failed: %v", err)
	}
	if got := s.Equipped(CategoryHat); got != "Cap" {
		t.Errorf("Equipped = %q, want Cap", got)
	}

	// Equipping the same item again is a no-op
	if err := s.Equip(CategoryHat, "Cap"); err != nil {
		t.Errorf("Re-equip failed: %v", err)
	}
	checkInvariants(t, s)
}

func TestEquipNotOwnedRejected(t *testing.T) {
	s := NewStore(testCatalog())

	if err := s.Equip(CategoryHat, "Crown"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("Equip(unowned) = %v, want ErrNotOwned", err)
	}
	if got := s.Equipped(CategoryHat); got != DefaultItem {
		t.Errorf("Rejected equip changed state to %q", got)
	}
	checkInvariants(t, s)
}

func TestOwnedOrder(t *testing.T) {
	s := NewStore(testCatalog())
	led := economy.NewLedger()
	led.Credit(600)
	s.Purchase(CategoryHat, "Crown", led)
	s.Purchase(CategoryHat, "Cap", led)

	got := s.Owned(CategoryHat)
	want := []string{DefaultItem, "Cap", "Crown"}
	if len(got) != len(want) {
		t.Fatalf("Owned() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Owned()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestVisual(t *testing.T) {
	s := NewStore(testCatalog())
	led := economy.NewLedger()
	led.Credit(100)

	// Default item renders as a neutral placeholder
	if got := s.Visual(CategoryHat); got != " " {
		t.Errorf("Visual(default) = %q, want blank", got)
	}

	s.Purchase(CategoryHat, "Cap", led)
	s.Equip(CategoryHat, "Cap")
	if got := s.Visual(CategoryHat); got != "c" {
		t.Errorf("Visual() = %q, want item glyph %q", got, "c")
	}
}
