package llmsdoc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/llmsdoc"
	"github.com/fwojciec/llmsdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLibrary(t *testing.T) {
	t.Parallel()

	src := llmsdoc.Sources{Outline: "llms.txt", Detail: "llms-full.txt"}

	t.Run("fetches outline then detail and parses them", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, location string) (string, error) {
				fetched = append(fetched, location)
				if location == "llms.txt" {
					return "## Components\n- [Anatomy](https://angular.dev/guide/components)", nil
				}
				return "# Angular\n## Anatomy\nEvery component has a template.", nil
			},
		}

		lib, err := llmsdoc.LoadLibrary(context.Background(), fetcher, src)

		require.NoError(t, err)
		assert.Equal(t, []string{"llms.txt", "llms-full.txt"}, fetched)
		require.Equal(t, 1, lib.Len())
		assert.Equal(t, "Anatomy\nEvery component has a template.", lib.Topics()[0].Content)
	})

	t.Run("returns empty library when outline fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, location string) (string, error) {
				return "", errors.New("permission denied")
			},
		}

		lib, err := llmsdoc.LoadLibrary(context.Background(), fetcher, src)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "llms.txt")
		require.NotNil(t, lib)
		assert.Equal(t, 0, lib.Len())
	})

	t.Run("returns empty library when detail fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, location string) (string, error) {
				if location == "llms.txt" {
					return "## A\n- [One](1)", nil
				}
				return "", llmsdoc.Errorf(llmsdoc.ENOTFOUND, "file %q not found", location)
			},
		}

		lib, err := llmsdoc.LoadLibrary(context.Background(), fetcher, src)

		assert.Equal(t, llmsdoc.ENOTFOUND, llmsdoc.ErrorCode(err))
		require.NotNil(t, lib)
		assert.Equal(t, 0, lib.Len())
		assert.Empty(t, lib.Detail())
	})
}
