package azure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "[defaults]\ngroup = team-rg\nlocation = westeurope\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config"), []byte(content), 0644))

	t.Setenv("AZURE_CONFIG_DIR", dir)

	defaults := ReadConfigDefaults()
	assert.Equal(t, "team-rg", defaults.ResourceGroup)
	assert.Equal(t, "westeurope", defaults.Location)
}

func TestReadConfigDefaultsMissingFile(t *testing.T) {
	t.Setenv("AZURE_CONFIG_DIR", t.TempDir())

	defaults := ReadConfigDefaults()
	assert.Empty(t, defaults.ResourceGroup)
	assert.Empty(t, defaults.Location)
}

func TestReadConfigDefaultsNoSection(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config"), []byte("[core]\noutput = json\n"), 0644))

	t.Setenv("AZURE_CONFIG_DIR", dir)

	defaults := ReadConfigDefaults()
	assert.Empty(t, defaults.ResourceGroup)
	assert.Empty(t, defaults.Location)
}
