//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package interfaces

type Cache interface {
	TTL(int)            // Cache time to live in seconds
	Clear()             // Clear the cache
	Set(string, []byte) // Set an item in the cache
	Get(string) []byte  // Get an item from the cache
	Len() int           // Number of live and expired entries
}
