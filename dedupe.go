package guessx

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/guessx/internal/dedupe"
)

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

type DedupeBackend interface {
	// Upsert adds elem to the backend and reports whether it was unseen
	Upsert(elem string) bool
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe drops repeated passwords of a batch, keeping first occurrences in order
type Dedupe struct {
	receive <-chan string
	backend DedupeBackend
}

// NewDedupe returns a dedupe instance reading from ch.
// Note: byteLen is the expected input size, above MaxInMemoryDedupeSize seen
// passwords are kept on disk
func NewDedupe(ch <-chan string, byteLen int) *Dedupe {
	d := &Dedupe{
		receive: ch,
	}
	if byteLen <= MaxInMemoryDedupeSize {
		d.backend = dedupe.NewMapBackend()
		return d
	}
	disk, err := dedupe.NewDiskBackend()
	if err != nil {
		gologger.Warning().Msgf("could not create disk dedupe store, falling back to memory: %v", err)
		d.backend = dedupe.NewMapBackend()
		return d
	}
	d.backend = disk
	return d
}

// GetResults forwards every element not seen before and cleans the backend
// once the input is drained
func (d *Dedupe) GetResults() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		defer d.backend.Cleanup()
		for val := range d.receive {
			if d.backend.Upsert(val) {
				send <- val
			}
		}
	}()
	return send
}
