package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("primaryColor: '#1e88e5'\ntextColor: '#212121'\n")
	assert.Empty(t, Unified(content, content, "default", "default"))
}

func TestUnified_ChangedLine(t *testing.T) {
	t.Parallel()

	before := []byte("backgroundColor: '#ffffff'\nprimaryColor: '#1e88e5'\ntextColor: '#212121'\n")
	after := []byte("backgroundColor: '#121212'\nprimaryColor: '#1e88e5'\ntextColor: '#eeeeee'\n")

	result := Unified(before, after, "default", "dark")

	assert.True(t, strings.HasPrefix(result, "--- default\n+++ dark\n@@ -1,3 +1,3 @@\n"))
	assert.Contains(t, result, "-backgroundColor: '#ffffff'\n")
	assert.Contains(t, result, "+backgroundColor: '#121212'\n")
	assert.Contains(t, result, " primaryColor: '#1e88e5'\n")
	assert.Contains(t, result, "-textColor: '#212121'\n")
	assert.Contains(t, result, "+textColor: '#eeeeee'\n")
}

func TestUnified_AddedAndRemovedLines(t *testing.T) {
	t.Parallel()

	before := []byte("a: 1\nb: 2\n")
	after := []byte("a: 1\nc: 3\nd: 4\n")

	result := Unified(before, after, "before", "after")
	assert.Contains(t, result, "-b: 2\n")
	assert.Contains(t, result, "+c: 3\n")
	assert.Contains(t, result, "+d: 4\n")
}

func TestUnified_Truncates(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		before.WriteString("old\n")
		after.WriteString("new\n")
	}

	result := Unified([]byte(before.String()), []byte(after.String()), "before", "after")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	assert.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}

func TestStat(t *testing.T) {
	t.Parallel()

	inserted, deleted := Stat([]byte("a\nb\nc\n"), []byte("a\nx\ny\nc\n"))
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 1, deleted)

	inserted, deleted = Stat([]byte("same\n"), []byte("same\n"))
	assert.Zero(t, inserted)
	assert.Zero(t, deleted)
}
