package costs

import (
	"bytes"
	"testing"

	"azops/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostsCmdDefaultDays(t *testing.T) {
	require.NoError(t, config.InitConfig(false, nil))
	cmd := NewCostsCmd()

	days, err := cmd.Flags().GetInt("days")
	require.NoError(t, err)
	assert.Equal(t, 30, days)
}

func TestCostsCmdRejectsNonPositiveDays(t *testing.T) {
	cmd := NewCostsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--days", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid day count")
}
