package steam

import "sync"

// cache holds per-session memoized store responses. The client is shared
// across concurrent API handlers, so access is guarded.
type cache struct {
	mu       sync.RWMutex
	searches map[string][]SearchResult
	apps     map[int]*AppDetails
}

func newCache() *cache {
	return &cache{
		searches: make(map[string][]SearchResult),
		apps:     make(map[int]*AppDetails),
	}
}

func (c *cache) search(term string) ([]SearchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	results, ok := c.searches[term]
	return results, ok
}

func (c *cache) putSearch(term string, results []SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searches[term] = results
}

func (c *cache) details(appID int) (*AppDetails, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	details, ok := c.apps[appID]
	return details, ok
}

func (c *cache) putDetails(appID int, details *AppDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apps[appID] = details
}
