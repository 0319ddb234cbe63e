package store

import (
	"testing"

	"ledgerkeep/internal/domain"
)

func TestAccountCacheRoundTrip(t *testing.T) {
	cache, err := newAccountCache(100)
	if err != nil {
		t.Fatalf("newAccountCache failed: %v", err)
	}

	account := &domain.Account{AccountNameOwner: "chase_owner", AccountType: domain.AccountTypeCredit}
	cache.set(account)

	got, ok := cache.get("chase_owner")
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if got.AccountType != domain.AccountTypeCredit {
		t.Errorf("cached account type = %q", got.AccountType)
	}
}

func TestAccountCacheInvalidate(t *testing.T) {
	cache, err := newAccountCache(100)
	if err != nil {
		t.Fatalf("newAccountCache failed: %v", err)
	}

	cache.set(&domain.Account{AccountNameOwner: "visa_owner"})
	cache.invalidate("visa_owner")

	if _, ok := cache.get("visa_owner"); ok {
		t.Error("expected miss after invalidate")
	}
}

func TestStoreInvalidateAccountDropsCachedEntry(t *testing.T) {
	cache, err := newAccountCache(100)
	if err != nil {
		t.Fatalf("newAccountCache failed: %v", err)
	}
	s := &Store{cache: cache}

	cache.set(&domain.Account{AccountNameOwner: "bank_owner"})
	s.InvalidateAccount("bank_owner")

	if _, ok := cache.get("bank_owner"); ok {
		t.Error("expected miss after InvalidateAccount")
	}
}

func TestAccountCacheNilSafe(t *testing.T) {
	var cache *accountCache
	cache.set(&domain.Account{AccountNameOwner: "x_y"})
	cache.invalidate("x_y")
	if _, ok := cache.get("x_y"); ok {
		t.Error("nil cache must always miss")
	}
}
