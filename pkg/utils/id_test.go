package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecutionID(t *testing.T) {
	first, err := NewExecutionID()
	require.NoError(t, err)
	second, err := NewExecutionID()
	require.NoError(t, err)

	assert.Len(t, first, executionIDSize)
	assert.NotEqual(t, first, second)
}

func TestTimestampID(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	at := time.Date(2025, 3, 10, 15, 4, 5, 0, saoPaulo)

	assert.Equal(t, "20250310180405", TimestampID(at))
}
