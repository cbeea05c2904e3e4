package iocache

import (
	"fmt"
	"sync"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
)

// queryTable is the name of the table for git query caching.
const queryTable = "gitchart_query_cache"

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitCaching initializes the global cache manager with a query store.
// An empty backend disables cache initialization.
func InitCaching(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var queryStore contract.CacheStore
		if backend != "" {
			var err error
			queryStore, err = NewCacheStore(queryTable, backend, connStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize query caching: %w", err)
				return
			}
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.query = queryStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseCaching should be called on application shutdown.
func CloseCaching() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.query != nil {
			_ = Manager.query.Close()
		}
	})
}
