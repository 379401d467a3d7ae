package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestListCommand_Builtin(t *testing.T) {
	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NAME")
	assert.Equal(t, []string{"dark", "dark"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"default", "light", "*"}, strings.Fields(lines[2]))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), "*"))
}

func TestListCommand_Catalog(t *testing.T) {
	catalog := writeFixture(t, "catalog.yaml", oceanCatalog)

	stdout, _, err := executeCommand(t, "list", "--catalog", catalog)
	require.NoError(t, err)
	assert.Contains(t, stdout, "midnight")
	assert.Contains(t, stdout, "ocean")

	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "ocean") {
			assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "*"))
		}
	}
}

func TestListCommand_InvalidCatalog(t *testing.T) {
	catalog := writeFixture(t, "catalog.yaml", "version: \"1.0\"\nthemes: []\n")

	_, _, err := executeCommand(t, "list", "--catalog", catalog)
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "Suggestion")
}
