package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/wikigrouth/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("reports added addresses", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.01)
		f.Add("http://dbpedia.org/resource/Graz")

		assert.True(t, f.Test("http://dbpedia.org/resource/Graz"))
	})

	t.Run("has no false negatives", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 1000; i++ {
			f.Add(fmt.Sprintf("http://dbpedia.org/resource/Item_%d", i))
		}
		for i := 0; i < 1000; i++ {
			assert.True(t, f.Test(fmt.Sprintf("http://dbpedia.org/resource/Item_%d", i)))
		}
	})

	t.Run("estimates count", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.01)
		for i := 0; i < 50; i++ {
			f.Add(fmt.Sprintf("u%d", i))
		}

		assert.InDelta(t, 50, f.EstimatedCount(), 5)
	})

	t.Run("accepts zero size", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(0, 0.01)
		assert.False(t, f.Test("anything"))
	})
}
