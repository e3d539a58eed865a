package corpus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/wikigrouth"
	"github.com/fwojciec/wikigrouth/corpus"
	"github.com/fwojciec/wikigrouth/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("records rows with every writer", func(t *testing.T) {
		t.Parallel()

		var docs, mentions int
		newWriter := func() *mock.CorpusWriter {
			return &mock.CorpusWriter{
				CreateDocumentFn: func(_ context.Context, _ *wikigrouth.Document) error {
					docs++
					return nil
				},
				CreateMentionFn: func(_ context.Context, _ *wikigrouth.Mention) error {
					mentions++
					return nil
				},
			}
		}
		w := corpus.NewMultiWriter(newWriter(), newWriter())

		require.NoError(t, w.CreateDocument(context.Background(), &wikigrouth.Document{URI: "http://dbpedia.org/resource/Graz"}))
		require.NoError(t, w.CreateMention(context.Background(), &wikigrouth.Mention{Offset: 3}))

		assert.Equal(t, 2, docs)
		assert.Equal(t, 2, mentions)
	})

	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("disk full")
		var secondCalled bool
		w := corpus.NewMultiWriter(
			&mock.CorpusWriter{
				CreateDocumentFn: func(_ context.Context, _ *wikigrouth.Document) error {
					return wantErr
				},
			},
			&mock.CorpusWriter{
				CreateDocumentFn: func(_ context.Context, _ *wikigrouth.Document) error {
					secondCalled = true
					return nil
				},
			},
		)

		err := w.CreateDocument(context.Background(), &wikigrouth.Document{URI: "http://dbpedia.org/resource/Graz"})

		assert.ErrorIs(t, err, wantErr)
		assert.False(t, secondCalled)
	})

	t.Run("closes every writer and joins errors", func(t *testing.T) {
		t.Parallel()

		errA := errors.New("flush a")
		errB := errors.New("flush b")
		var closed int
		w := corpus.NewMultiWriter(
			&mock.CorpusWriter{CloseFn: func() error { closed++; return errA }},
			&mock.CorpusWriter{CloseFn: func() error { closed++; return nil }},
			&mock.CorpusWriter{CloseFn: func() error { closed++; return errB }},
		)

		err := w.Close()

		assert.Equal(t, 3, closed)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
	})
}
