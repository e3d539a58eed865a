package bloom_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/wikigrouth/bloom"
	"github.com/fwojciec/wikigrouth/mock"
	"github.com/stretchr/testify/assert"
)

func TestSeedSet(t *testing.T) {
	t.Parallel()

	t.Run("contains seeds only", func(t *testing.T) {
		t.Parallel()

		set := bloom.NewSeedSet([]string{
			"http://dbpedia.org/resource/Graz",
			"http://dbpedia.org/resource/Vienna",
		}, nil)

		assert.Equal(t, 2, set.Len())
		assert.True(t, set.Contains("http://dbpedia.org/resource/Graz"))
		assert.True(t, set.Contains("http://dbpedia.org/resource/Vienna"))
		assert.False(t, set.Contains("http://dbpedia.org/resource/Linz"))
		assert.False(t, set.Contains(""))
	})

	t.Run("resolves seeds before adding", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(uri string) string {
				return strings.ToLower(uri)
			},
		}
		set := bloom.NewSeedSet([]string{"http://dbpedia.org/resource/Graz"}, resolver)

		assert.True(t, set.Contains("http://dbpedia.org/resource/graz"))
		assert.False(t, set.Contains("http://dbpedia.org/resource/Graz"))
	})

	t.Run("is exact for large sets", func(t *testing.T) {
		t.Parallel()

		seeds := make([]string, 0, 500)
		for i := 0; i < 500; i++ {
			seeds = append(seeds, fmt.Sprintf("http://dbpedia.org/resource/Seed_%d", i))
		}
		set := bloom.NewSeedSet(seeds, nil)

		for i := 0; i < 500; i++ {
			assert.True(t, set.Contains(fmt.Sprintf("http://dbpedia.org/resource/Seed_%d", i)))
			assert.False(t, set.Contains(fmt.Sprintf("http://dbpedia.org/resource/Other_%d", i)))
		}
	})

	t.Run("empty set contains nothing", func(t *testing.T) {
		t.Parallel()

		set := bloom.NewSeedSet(nil, nil)
		assert.False(t, set.Contains("http://dbpedia.org/resource/Graz"))
	})
}
