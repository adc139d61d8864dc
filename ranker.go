package wordusage

import (
	"math"
	"sort"
)

// Class is the report section a word belongs to
type Class int

const (
	// ClassCommon words occur more than once and are known to the reference corpus
	ClassCommon Class = iota
	// ClassSingleton words occur exactly once and are known to the reference corpus
	ClassSingleton
	// ClassUnknown words are absent from the reference corpus (misspelled, foreign, invented)
	ClassUnknown
)

func (c Class) String() string {
	switch c {
	case ClassCommon:
		return "common"
	case ClassSingleton:
		return "singleton"
	case ClassUnknown:
		return "unknown"
	}
	return "invalid"
}

// WordStat is aggregated usage data of a single distinct word
type WordStat struct {
	Word      string
	Count     int
	Positions []int
	Class     Class
	// RelativeFrequency is document frequency divided by reference frequency (common words only)
	RelativeFrequency float64
	// ReferenceFrequency is the general-language frequency, 0 for unknown words
	ReferenceFrequency float64
	// MinGap is the smallest distance between two consecutive occurrences (Count >= 2 only)
	MinGap int
}

// HasGap returns true if MinGap is defined for this word
func (w *WordStat) HasGap() bool {
	return w.Count >= 2
}

// Report is the ranked result of a run
type Report struct {
	TotalTokens int
	Common      []*WordStat
	Singletons  []*WordStat
	Unknown     []*WordStat
}

// Entries returns common, singleton and unknown words in report order
func (r *Report) Entries() []*WordStat {
	entries := make([]*WordStat, 0, len(r.Common)+len(r.Singletons)+len(r.Unknown))
	entries = append(entries, r.Common...)
	entries = append(entries, r.Singletons...)
	entries = append(entries, r.Unknown...)
	return entries
}

// Len returns number of distinct words in report
func (r *Report) Len() int {
	return len(r.Common) + len(r.Singletons) + len(r.Unknown)
}

// Counts holds per-word occurrence positions in first-seen order
type Counts struct {
	order     []string
	positions map[string][]int
	total     int
}

// NewCounts returns empty counts
func NewCounts() *Counts {
	return &Counts{positions: map[string][]int{}}
}

// CountTokens counts occurrences of each word in tokens
func CountTokens(tokens []Token) *Counts {
	c := NewCounts()
	for _, t := range tokens {
		c.Add(t.Word, t.Position)
	}
	return c
}

// Add records an occurrence of word at position
func (c *Counts) Add(word string, position int) {
	pos, ok := c.positions[word]
	if !ok {
		c.order = append(c.order, word)
	}
	c.positions[word] = append(pos, position)
	c.total++
}

// Merge adds all occurrences of other into c. Positions of other must
// already be absolute (offset by the shard start) for gaps to be valid
func (c *Counts) Merge(other *Counts) {
	for _, word := range other.order {
		for _, p := range other.positions[word] {
			c.Add(word, p)
		}
	}
	for word, pos := range c.positions {
		if !sort.IntsAreSorted(pos) {
			sort.Ints(pos)
			c.positions[word] = pos
		}
	}
}

// Total returns number of occurrences recorded
func (c *Counts) Total() int {
	return c.total
}

// Distinct returns number of distinct words recorded
func (c *Counts) Distinct() int {
	return len(c.order)
}

// Rank classifies and orders every distinct word of tokens using lookup
// as the reference frequency of a word (0 = unknown to the corpus).
// lookup is called exactly once per distinct word
func Rank(tokens []Token, lookup func(word string) float64) *Report {
	return RankCounts(CountTokens(tokens), lookup)
}

// RankCounts is Rank over already counted tokens
func RankCounts(counts *Counts, lookup func(word string) float64) *Report {
	report := &Report{
		TotalTokens: counts.total,
		Common:      []*WordStat{},
		Singletons:  []*WordStat{},
		Unknown:     []*WordStat{},
	}
	if counts.total == 0 {
		return report
	}
	total := float64(counts.total)

	for _, word := range counts.order {
		positions := counts.positions[word]
		stat := &WordStat{
			Word:      word,
			Count:     len(positions),
			Positions: positions,
		}
		if stat.Count >= 2 {
			stat.MinGap = minGap(positions)
		}
		ref := lookup(word)
		switch {
		case !(ref > 0) || math.IsInf(ref, 0):
			// NaN, negative and infinite values are as good as absent
			stat.Class = ClassUnknown
			report.Unknown = append(report.Unknown, stat)
		case stat.Count == 1:
			stat.Class = ClassSingleton
			stat.ReferenceFrequency = ref
			report.Singletons = append(report.Singletons, stat)
		default:
			stat.Class = ClassCommon
			stat.ReferenceFrequency = ref
			stat.RelativeFrequency = (float64(stat.Count) / total) / ref
			report.Common = append(report.Common, stat)
		}
	}

	sort.SliceStable(report.Common, func(i, j int) bool {
		a, b := report.Common[i], report.Common[j]
		if a.RelativeFrequency != b.RelativeFrequency {
			return a.RelativeFrequency > b.RelativeFrequency
		}
		return a.Word < b.Word
	})
	sort.SliceStable(report.Singletons, func(i, j int) bool {
		a, b := report.Singletons[i], report.Singletons[j]
		if a.ReferenceFrequency != b.ReferenceFrequency {
			return a.ReferenceFrequency < b.ReferenceFrequency
		}
		return a.Word < b.Word
	})
	// unknown words stay in first-seen order
	return report
}

// minGap returns smallest difference between consecutive positions
func minGap(positions []int) int {
	gap := math.MaxInt
	for i := 1; i < len(positions); i++ {
		if d := positions[i] - positions[i-1]; d < gap {
			gap = d
		}
	}
	return gap
}
