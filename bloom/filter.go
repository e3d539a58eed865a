// Package bloom provides seed membership tests backed by a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for address lookups.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an address to the filter.
func (f *Filter) Add(uri string) {
	f.f.AddString(uri)
}

// Test returns true if the address might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(uri string) bool {
	return f.f.TestString(uri)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
