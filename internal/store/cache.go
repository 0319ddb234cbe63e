package store

import (
	"github.com/dgraph-io/ristretto"

	"ledgerkeep/internal/domain"
)

// accountCache is a small read-through cache for account lookups by
// account_name_owner. Every write path through the store invalidates the
// touched name, and writers that bypass the store (the payment service
// refreshes totals inside its own transaction) evict through
// Store.InvalidateAccount after commit.
type accountCache struct {
	cache *ristretto.Cache
}

func newAccountCache(maxEntries int64) (*accountCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries, // number of keys to track frequency of
		MaxCost:     maxEntries,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}
	return &accountCache{cache: c}, nil
}

func (c *accountCache) get(nameOwner string) (*domain.Account, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.cache.Get(nameOwner)
	if !ok {
		return nil, false
	}
	account, ok := v.(*domain.Account)
	return account, ok
}

func (c *accountCache) set(account *domain.Account) {
	if c == nil {
		return
	}
	c.cache.Set(account.AccountNameOwner, account, 1)
	// Set is async; force the buffered write through so a read-after-write
	// in the same request sees the entry.
	c.cache.Wait()
}

func (c *accountCache) invalidate(nameOwner string) {
	if c == nil {
		return
	}
	c.cache.Del(nameOwner)
}
