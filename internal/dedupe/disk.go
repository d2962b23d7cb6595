package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// DiskBackend keeps seen elements in a temporary disk-backed hybrid map, for
// batches too large for memory
type DiskBackend struct {
	storage *hybrid.HybridMap
}

func NewDiskBackend() (*DiskBackend, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, err
	}
	return &DiskBackend{storage: db}, nil
}

// Upsert stores elem and reports whether it was new
func (l *DiskBackend) Upsert(elem string) bool {
	if _, ok := l.storage.Get(elem); ok {
		return false
	}
	if err := l.storage.Set(elem, nil); err != nil {
		gologger.Error().Msgf("dedupe: disk: got %v while writing element", err)
	}
	return true
}

func (l *DiskBackend) Cleanup() {
	_ = l.storage.Close()
}
