package cache

// NullCache never stores anything. It backs the --no-cache flag and keeps
// callers free of nil checks.
type NullCache struct{}

// Get always misses.
func (NullCache) Get(string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the data.
func (NullCache) Set(string, []byte) error { return nil }

// Delete does nothing.
func (NullCache) Delete(string) error { return nil }

var _ Cache = NullCache{}
