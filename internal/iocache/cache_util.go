package iocache

import (
	"fmt"
	"os"

	"github.com/flashcode/gitchart/schema"
)

// ClearCache removes all cached query data for the given backend.
// For SQLite the database file is deleted; server backends keep the table
// and delete its rows.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove cache file %q: %w", dbFilePath, err)
		}
		return nil
	case schema.NoneBackend:
		return nil
	default:
		store, err := NewCacheStore(queryTable, backend, connStr)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		return store.Clear()
	}
}

// PrintCacheStatus prints cache status information to stdout.
func PrintCacheStatus(status schema.CacheStatus) {
	fmt.Printf("Cache backend: %s\n", status.Backend)
	fmt.Printf("Connected:     %t\n", status.Connected)
	fmt.Printf("Total entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Last entry:    %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest entry:  %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	if status.TableSizeBytes > 0 {
		fmt.Printf("Size on disk:  %d bytes\n", status.TableSizeBytes)
	}
}
