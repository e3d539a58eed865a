package corpus_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/wikigrouth"
	"github.com/fwojciec/wikigrouth/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements wikigrouth.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ wikigrouth.DomainLimiter = corpus.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := corpus.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "en.wikipedia.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := corpus.NewDomainLimiter(10)

		err := limiter.Wait(context.Background(), "en.wikipedia.org")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "en.wikipedia.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := corpus.NewDomainLimiter(10)

		err := limiter.Wait(context.Background(), "en.wikipedia.org")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "de.wikipedia.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("non-positive rate disables limiting", func(t *testing.T) {
		t.Parallel()

		limiter := corpus.NewDomainLimiter(0)

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(context.Background(), "en.wikipedia.org"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := corpus.NewDomainLimiter(1)

		err := limiter.Wait(context.Background(), "en.wikipedia.org")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "en.wikipedia.org")
		assert.Error(t, err, "should fail when context times out")
	})

	t.Run("concurrent requests are serialized per domain", func(t *testing.T) {
		t.Parallel()

		limiter := corpus.NewDomainLimiter(100)

		var wg sync.WaitGroup
		var completed atomic.Int32

		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := limiter.Wait(context.Background(), "en.wikipedia.org"); err == nil {
					completed.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(5), completed.Load(), "all requests should complete")
	})
}
