package iocache

import (
	"sync"

	"github.com/flashcode/gitchart/internal/contract"
)

// CacheStoreManager manages the CacheStore instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	query        contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetQueryStore returns the query CacheStore.
func (mgr *CacheStoreManager) GetQueryStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.query
}
