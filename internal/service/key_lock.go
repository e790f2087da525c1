package service

import (
	"context"
	"sort"
	"sync"
)

// KeyLock serialises work on a single logical key, such as one license
// number, so a uniqueness check and the insert that follows it cannot
// interleave with another request for the same key.
type KeyLock interface {
	// Acquire blocks until the key is held or ctx is done. The returned
	// release func must be called exactly once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// LicenseLockKey and EmailLockKey name the keys guarded on create/update.
func LicenseLockKey(licenseNumber string) string {
	return "lock:doctor:license:" + licenseNumber
}

func EmailLockKey(email string) string {
	return "lock:patient:email:" + email
}

// AcquireAll takes every key in sorted order, skipping blanks and
// duplicates, and returns one func releasing them in reverse.
func AcquireAll(ctx context.Context, locks KeyLock, keys ...string) (func(), error) {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	sort.Strings(unique)

	releases := make([]func(), 0, len(unique))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
	for _, k := range unique {
		release, err := locks.Acquire(ctx, k)
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}
	return releaseAll, nil
}

type localLockEntry struct {
	sem  chan struct{}
	refs int
}

type localKeyLock struct {
	mu      sync.Mutex
	entries map[string]*localLockEntry
}

// NewLocalKeyLock returns an in-process KeyLock. Entries are dropped as soon
// as nobody holds or waits for them.
func NewLocalKeyLock() KeyLock {
	return &localKeyLock{entries: make(map[string]*localLockEntry)}
}

func (l *localKeyLock) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &localLockEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			l.unref(key, e)
		})
	}, nil
}

func (l *localKeyLock) unref(key string, e *localLockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
