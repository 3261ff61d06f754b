package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDNPPlayersForGame_RejectsUnknownStat(t *testing.T) {
	r := NewGameLogRepository(nil)

	// The stat name arrives from a route parameter; anything outside the
	// allowlist must be rejected before a query is built.
	_, err := r.GetDNPPlayersForGame(context.Background(), "0022500001", 1, "pts; DROP TABLE schedule")
	assert.ErrorContains(t, err, "unsupported stat")

	_, err = r.GetDNPPlayersForGame(context.Background(), "0022500001", 1, "fouls")
	assert.ErrorContains(t, err, "unsupported stat")
}
