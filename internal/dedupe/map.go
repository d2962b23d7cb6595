package dedupe

import "runtime/debug"

// MapBackend keeps seen elements in memory
type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

// Upsert stores elem and reports whether it was new
func (m *MapBackend) Upsert(elem string) bool {
	if _, ok := m.storage[elem]; ok {
		return false
	}
	m.storage[elem] = struct{}{}
	return true
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// By default GC doesnot release buffered/allocated memory
	// since there always is possibilitly of needing it again/immediately
	// and releases memory in chunks
	// debug.FreeOSMemory forces GC to release allocated memory at once
	debug.FreeOSMemory()
}
