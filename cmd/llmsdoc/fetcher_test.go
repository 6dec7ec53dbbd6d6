package main_test

import (
	"context"
	"errors"
	"testing"

	main "github.com/fwojciec/llmsdoc/cmd/llmsdoc"
	"github.com/fwojciec/llmsdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFetcher(t *testing.T) {
	t.Parallel()

	t.Run("routes by scheme", func(t *testing.T) {
		t.Parallel()

		file := &mock.Fetcher{
			FetchFn: func(ctx context.Context, location string) (string, error) {
				return "file:" + location, nil
			},
		}
		remote := &mock.Fetcher{
			FetchFn: func(ctx context.Context, location string) (string, error) {
				return "remote:" + location, nil
			},
		}
		f := main.NewSourceFetcher(file, remote)

		got, err := f.Fetch(context.Background(), "https://angular.dev/llms.txt")
		require.NoError(t, err)
		assert.Equal(t, "remote:https://angular.dev/llms.txt", got)

		got, err = f.Fetch(context.Background(), "docs/llms.txt")
		require.NoError(t, err)
		assert.Equal(t, "file:docs/llms.txt", got)
	})

	t.Run("closes both fetchers", func(t *testing.T) {
		t.Parallel()

		var closed []string
		file := &mock.Fetcher{CloseFn: func() error {
			closed = append(closed, "file")
			return nil
		}}
		remote := &mock.Fetcher{CloseFn: func() error {
			closed = append(closed, "remote")
			return errors.New("close failed")
		}}

		err := main.NewSourceFetcher(file, remote).Close()

		require.Error(t, err)
		assert.Equal(t, []string{"file", "remote"}, closed)
	})
}

func TestIsRemote(t *testing.T) {
	t.Parallel()

	assert.True(t, main.IsRemote("https://angular.dev/llms.txt"))
	assert.True(t, main.IsRemote("HTTP://example.com/llms.txt"))
	assert.False(t, main.IsRemote("file:///tmp/llms.txt"))
	assert.False(t, main.IsRemote("llms.txt"))
}
