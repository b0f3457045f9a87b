package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageTotals(t *testing.T) {
	report, err := Coverage(context.Background(), DefaultTable, CoverageOptions{Hands: 20000, Workers: 4, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, 20000, report.Hands)
	require.Len(t, report.Hits, DefaultTable.Len())

	sum := 0
	for _, h := range report.Hits {
		sum += h
	}
	assert.Equal(t, report.Hands, sum+report.Unmatched)
	assert.Equal(t, sum, report.Matched())

	// 124 of the 1326 starting hands are in the table (about 9.4%).
	frac := float64(report.Matched()) / float64(report.Hands)
	assert.InDelta(t, 124.0/1326.0, frac, 0.02)
}

func TestCoverageDeterministic(t *testing.T) {
	opts := CoverageOptions{Hands: 5000, Workers: 3, Seed: 42}
	a, err := Coverage(context.Background(), DefaultTable, opts)
	require.NoError(t, err)
	b, err := Coverage(context.Background(), DefaultTable, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCoverageMoreWorkersThanHands(t *testing.T) {
	report, err := Coverage(context.Background(), DefaultTable, CoverageOptions{Hands: 3, Workers: 8, Seed: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Hands)
}

func TestCoverageErrors(t *testing.T) {
	_, err := Coverage(context.Background(), DefaultTable, CoverageOptions{Hands: 0})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Coverage(ctx, DefaultTable, CoverageOptions{Hands: 100, Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
}
