package llmsdoc_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/llmsdoc"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns short strings unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "signals", llmsdoc.Truncate("signals", 300))
	})

	t.Run("keeps strings of exactly the limit", func(t *testing.T) {
		t.Parallel()

		s := strings.Repeat("a", 300)

		assert.Equal(t, s, llmsdoc.Truncate(s, 300))
	})

	t.Run("cuts long strings and appends ellipsis", func(t *testing.T) {
		t.Parallel()

		got := llmsdoc.Truncate(strings.Repeat("a", 301), 300)

		assert.Equal(t, strings.Repeat("a", 300)+"...", got)
	})

	t.Run("counts runes rather than bytes", func(t *testing.T) {
		t.Parallel()

		got := llmsdoc.Truncate("ångström", 3)

		assert.Equal(t, "ång...", got)
	})
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", llmsdoc.Prefix("abcdef", 3))
	assert.Equal(t, "ab", llmsdoc.Prefix("ab", 3))
	assert.Equal(t, "", llmsdoc.Prefix("", 3))
}
