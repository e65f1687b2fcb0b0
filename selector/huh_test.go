package selector

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuhChooserSelect_SingleOption(t *testing.T) {
	var output bytes.Buffer
	chooser := NewHuhChooser(huh.ThemeBase(), &output)

	index, err := chooser.Select("Cluster", []string{"prod"})

	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Contains(t, output.String(), "Cluster:")
	assert.Contains(t, output.String(), "prod")
}

func TestHuhChooserSelect_NoOptions(t *testing.T) {
	var output bytes.Buffer
	chooser := NewHuhChooser(huh.ThemeBase(), &output)

	_, err := chooser.Select("Cluster", nil)

	assert.EqualError(t, err, "no options to select a cluster from")
	assert.Empty(t, output.String())
}
