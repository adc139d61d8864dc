package store

import (
	"encoding/binary"
	"math"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// HybridBackend keeps word frequencies in a disk backed hybrid map
// and is used for corpora too large to keep in memory
type HybridBackend struct {
	storage *hybrid.HybridMap
	count   int
}

func NewHybridBackend() (*HybridBackend, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, errorutil.NewWithErr(err).Msgf("failed to create temp dir for corpus storage")
	}
	return &HybridBackend{storage: db}, nil
}

func (h *HybridBackend) Add(word string, value float64) error {
	if old, ok := h.Get(word); ok {
		value += old
	} else {
		h.count++
	}
	return h.storage.Set(word, encode(value))
}

func (h *HybridBackend) Get(word string) (float64, bool) {
	bin, ok := h.storage.Get(word)
	if !ok || len(bin) != 8 {
		return 0, false
	}
	return decode(bin), true
}

func (h *HybridBackend) Len() int {
	return h.count
}

func (h *HybridBackend) Cleanup() {
	if err := h.storage.Close(); err != nil {
		gologger.Verbose().Msgf("corpus storage: hybrid: close failed: %v", err)
	}
}

func encode(v float64) []byte {
	bin := make([]byte, 8)
	binary.BigEndian.PutUint64(bin, math.Float64bits(v))
	return bin
}

func decode(bin []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(bin))
}
