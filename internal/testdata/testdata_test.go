package testdata

import (
	"strings"
	"sync"
	"testing"

	"ledgerkeep/internal/domain"
)

func TestUniqueAccountNameSatisfiesConstraints(t *testing.T) {
	owner := NewTestOwner()
	for i := 0; i < 200; i++ {
		name := UniqueAccountName(owner, "primary")
		if !domain.AccountNamePattern.MatchString(name) {
			t.Fatalf("name %q does not match %s", name, domain.AccountNamePattern)
		}
		if len(name) < domain.AccountNameMinLen || len(name) > domain.AccountNameMaxLen {
			t.Fatalf("name %q length %d out of [3,40]", name, len(name))
		}
		if name != strings.ToLower(name) {
			t.Fatalf("name %q is not lowercase", name)
		}
	}
}

func TestUniqueAccountNameNeverRepeats(t *testing.T) {
	owner := NewTestOwner()
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		name := UniqueAccountName(owner, "visa")
		if seen[name] {
			t.Fatalf("duplicate generated name %q", name)
		}
		seen[name] = true
	}
}

func TestUniqueAccountNameStripsIllegalCharacters(t *testing.T) {
	owner := NewTestOwner()
	name := UniqueAccountName(owner, "My Bank #1!")
	if !domain.AccountNamePattern.MatchString(name) {
		t.Errorf("cleaned name %q still violates pattern", name)
	}
	if !strings.HasPrefix(name, "mybank") {
		t.Errorf("expected semantic prefix to survive cleaning, got %q", name)
	}
}

func TestUniqueAccountNameTruncatesOwnerSuffixNotPrefix(t *testing.T) {
	longOwner := strings.Repeat("o", 60)
	name := UniqueAccountName(longOwner, "checking")
	if len(name) > domain.AccountNameMaxLen {
		t.Fatalf("name %q exceeds max length", name)
	}
	if !strings.HasPrefix(name, "checking") {
		t.Errorf("prefix was truncated: %q", name)
	}
	if !domain.AccountNamePattern.MatchString(name) {
		t.Errorf("truncated name %q violates pattern", name)
	}
}

func TestUniqueAccountNameConcurrent(t *testing.T) {
	owner := NewTestOwner()
	const workers, perWorker = 8, 50

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, UniqueAccountName(owner, "race"))
			}
			mu.Lock()
			defer mu.Unlock()
			for _, name := range local {
				if seen[name] {
					t.Errorf("duplicate name under concurrency: %q", name)
				}
				seen[name] = true
			}
		}()
	}
	wg.Wait()
}

func TestUniqueCategoryNameSatisfiesConstraints(t *testing.T) {
	owner := NewTestOwner()
	for i := 0; i < 200; i++ {
		name := UniqueCategoryName(owner, "online")
		if !domain.CategoryNamePattern.MatchString(name) {
			t.Fatalf("name %q does not match %s", name, domain.CategoryNamePattern)
		}
		if len(name) < domain.CategoryNameMinLen || len(name) > domain.CategoryNameMaxLen {
			t.Fatalf("name %q length %d out of [1,50]", name, len(name))
		}
		if name != strings.ToLower(name) {
			t.Fatalf("name %q is not lowercase", name)
		}
	}
}

func TestNewTestOwnerLettersOnly(t *testing.T) {
	for i := 0; i < 50; i++ {
		owner := NewTestOwner()
		for _, r := range owner {
			if r < 'a' || r > 'z' {
				t.Fatalf("owner token %q contains non-letter %q", owner, r)
			}
		}
		if len(owner) < 4 {
			t.Fatalf("owner token %q too short", owner)
		}
	}
}

func TestNewTestOwnerUnique(t *testing.T) {
	a, b := NewTestOwner(), NewTestOwner()
	if a == b {
		t.Errorf("two owner tokens collided: %q", a)
	}
}
