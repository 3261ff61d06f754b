package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

func TestAnnotateGameLogsPerGame(t *testing.T) {
	logs := []*store.GameLog{
		{GameID: "0022500101"},
		{GameID: "0022500095"},
	}

	// A teammate who sat the older game but played the recent one must
	// only appear on the older entry.
	byGame := map[string][]repository.DNPPlayer{
		"0022500101": nil,
		"0022500095": {{PlayerID: 203999, PlayerName: "Nikola Jokic", Stat: "points", SeasonAvg: 28.4}},
	}

	entries, err := annotateGameLogs(logs, func(gameID string) ([]repository.DNPPlayer, error) {
		return byGame[gameID], nil
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "0022500101", entries[0].GameID)
	assert.Empty(t, entries[0].DNPPlayers)

	assert.Equal(t, "0022500095", entries[1].GameID)
	require.Len(t, entries[1].DNPPlayers, 1)
	assert.Equal(t, "Nikola Jokic", entries[1].DNPPlayers[0].PlayerName)
}

func TestAnnotateGameLogsPropagatesLookupError(t *testing.T) {
	logs := []*store.GameLog{{GameID: "0022500101"}}

	_, err := annotateGameLogs(logs, func(gameID string) ([]repository.DNPPlayer, error) {
		return nil, fmt.Errorf("unsupported stat: fouls")
	})
	assert.ErrorContains(t, err, "unsupported stat")
}

func TestAnnotateGameLogsEmpty(t *testing.T) {
	entries, err := annotateGameLogs(nil, func(gameID string) ([]repository.DNPPlayer, error) {
		t.Fatal("lookup should not run without logs")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
