// Package membership provides the membership-oracle wrapper (spec §4.1):
// a mandatory memoizing cache in front of pluggable oracle implementations
// that answer "is w in L?" by prompting a human or consulting a log file.
package membership

// Oracle answers whether a string belongs to the language being learned. An
// Oracle must be deterministic: the same w must always yield the same
// answer within a session.
type Oracle interface {
	Ask(w string) (bool, error)
}

// Cache wraps an Oracle with memoization keyed on the exact string,
// including ε. A cache hit short-circuits before any I/O reaches the
// wrapped Oracle, which is mandatory for interactive oracles (re-prompting
// a human for a string already answered would be both wrong and
// infuriating).
type Cache struct {
	oracle Oracle
	hits   map[string]bool
}

// NewCache wraps oracle in a memoizing Cache.
func NewCache(oracle Oracle) *Cache {
	return &Cache{
		oracle: oracle,
		hits:   make(map[string]bool),
	}
}

// Ask returns the cached answer for w if one exists, otherwise queries the
// wrapped oracle and caches the result before returning it.
func (c *Cache) Ask(w string) (bool, error) {
	if answer, ok := c.hits[w]; ok {
		return answer, nil
	}

	answer, err := c.oracle.Ask(w)
	if err != nil {
		return false, err
	}

	c.hits[w] = answer
	return answer, nil
}

// Queries returns the number of strings answered by the wrapped oracle so
// far (cache misses), for query-count reporting (spec §8, P5).
func (c *Cache) Queries() int {
	return len(c.hits)
}
