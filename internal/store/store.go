// ABOUTME: Badger-backed key-value store for all persistent tracker state.
// ABOUTME: Writes retry once after trimming reclaimable collections; reads never fail callers.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// Logical key names for every persisted entity. These are stable across
// versions for upgrade compatibility.
const (
	KeyUserProfile        = "user_profile"
	KeyDailyTarget        = "daily_target"
	KeyFoodLog            = "food_log"
	KeyExerciseLog        = "exercise_log"
	KeyCurrentDate        = "current_date"
	KeyWeeklyHistory      = "weekly_history"
	KeyFoodHistory        = "food_history"
	KeyWaterLog           = "water_log"
	KeyPreferences        = "preferences"
	KeyOnboardingComplete = "onboarding_complete"
	KeyRecentFoods        = "recent_foods"
	KeyFavoriteFoods      = "favorite_foods"
	KeyWeightLog          = "weight_log"
	KeyStreakData         = "streak_data"
	KeyMacroGoals         = "macro_goals"
	KeyMicronutrientGoals = "micronutrient_goals"
	KeyLastSyncTime       = "last_sync_time"
)

// TrimFunc shrinks a reclaimable collection's serialized value. It returns
// the trimmed bytes and whether anything was actually removed.
type TrimFunc func(raw []byte) ([]byte, bool)

// Store wraps a Badger database holding one value per logical key.
type Store struct {
	db     *badger.DB
	logger *zap.SugaredLogger
	mu     sync.RWMutex

	reclaimMu    sync.Mutex
	reclaimables map[string]TrimFunc
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger for corruption warnings and retry reporting.
// Badger's own output is routed through it as well.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) { s.logger = l }
}

// Open opens or creates the store at the given directory.
func Open(dir string, opts ...Option) (*Store, error) {
	s := &Store{reclaimables: make(map[string]TrimFunc)}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0750); err != nil {
		return nil, err
	}

	bopts := badger.DefaultOptions(dir).WithLogger(badgerLogger{s.logger})
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, err
	}
	s.db = db
	return s, nil
}

// OpenInMemory opens an ephemeral store backed by memory only.
// Used by tests and by callers that want a scratch session.
func OpenInMemory(opts ...Option) (*Store, error) {
	s := &Store{reclaimables: make(map[string]TrimFunc)}
	for _, opt := range opts {
		opt(s)
	}

	bopts := badger.DefaultOptions("").WithInMemory(true).WithLogger(badgerLogger{s.logger})
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, err
	}
	s.db = db
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetRaw returns the stored bytes for a key. The second return is false if
// the key is absent.
func (s *Store) GetRaw(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) && s.logger != nil {
			s.logger.Warnf("read %s: %v", key, err)
		}
		return nil, false
	}
	return out, true
}

// SetRaw stores bytes under a key. On failure it trims every registered
// reclaimable collection and retries exactly once; a second failure is
// reported as false and the caller's in-memory state is the only copy.
func (s *Store) SetRaw(key string, val []byte) bool {
	if err := s.write(key, val); err == nil {
		return true
	} else if s.logger != nil {
		s.logger.Warnf("write %s failed, reclaiming: %v", key, err)
	}

	s.reclaim()

	if err := s.write(key, val); err != nil {
		if s.logger != nil {
			s.logger.Errorf("write %s failed after reclaim: %v", key, err)
		}
		return false
	}
	return true
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Keys returns every key currently in the store.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	_ = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys
}

// RegisterReclaimable marks a key as a low-priority cached collection that
// may be trimmed when a write fails for capacity reasons.
func (s *Store) RegisterReclaimable(key string, trim TrimFunc) {
	s.reclaimMu.Lock()
	defer s.reclaimMu.Unlock()
	s.reclaimables[key] = trim
}

func (s *Store) write(key string, val []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}

// reclaim trims every registered collection once, writing back only values
// that actually shrank.
func (s *Store) reclaim() {
	s.reclaimMu.Lock()
	defer s.reclaimMu.Unlock()

	for key, trim := range s.reclaimables {
		raw, ok := s.GetRaw(key)
		if !ok {
			continue
		}
		trimmed, changed := trim(raw)
		if !changed {
			continue
		}
		if err := s.write(key, trimmed); err != nil && s.logger != nil {
			s.logger.Warnf("reclaim %s: %v", key, err)
		}
	}
}

// badgerLogger adapts a zap SugaredLogger to badger's Logger interface.
// A nil logger silences badger entirely.
type badgerLogger struct {
	l *zap.SugaredLogger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	if b.l != nil {
		b.l.Errorf(format, args...)
	}
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	if b.l != nil {
		b.l.Warnf(format, args...)
	}
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	if b.l != nil {
		b.l.Debugf(format, args...)
	}
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	if b.l != nil {
		b.l.Debugf(format, args...)
	}
}
