// Package store provides storage backends for reference corpus frequencies.
package store

// Backend stores a frequency value per word
type Backend interface {
	// Add adds value to the frequency of word (missing words start at 0)
	Add(word string, value float64) error
	// Get returns frequency of word and whether it exists
	Get(word string) (float64, bool)
	// Len returns number of distinct words
	Len() int
	// Cleanup releases any resources held by the backend
	Cleanup()
}

// New returns a backend suited for a corpus of byteLen bytes.
// Corpora larger than maxInMemory are kept on disk
func New(byteLen int64, maxInMemory int64) (Backend, error) {
	if byteLen <= maxInMemory {
		return NewMapBackend(), nil
	}
	return NewHybridBackend()
}
