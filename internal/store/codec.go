// ABOUTME: Generic JSON codec over the key-value store.
// ABOUTME: Missing or corrupt values fall back to the caller-supplied default.
package store

import "encoding/json"

// Get decodes the value under key into T. A missing or undecodable value
// returns the fallback; corruption is treated the same as absence.
func Get[T any](s *Store, key string, fallback T) T {
	raw, ok := s.GetRaw(key)
	if !ok {
		return fallback
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		if s.logger != nil {
			s.logger.Warnf("corrupt value for %s, using default: %v", key, err)
		}
		return fallback
	}
	return out
}

// Set encodes v as JSON and stores it under key. Returns false if the value
// could not be encoded or the write failed even after reclaim and retry.
func Set[T any](s *Store, key string, v T) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		if s.logger != nil {
			s.logger.Errorf("encode %s: %v", key, err)
		}
		return false
	}
	return s.SetRaw(key, raw)
}
