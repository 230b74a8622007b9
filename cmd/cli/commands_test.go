package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundsEndpoint(t *testing.T) {
	assert.Equal(t, "/score/list/g1", roundsEndpoint("g1", ""))
	assert.Equal(t, "/score/list/g1?roundId=r+2", roundsEndpoint("g1", "r 2"))
}

func TestPerformGetRequest(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("OK!"))
	}))
	defer srv.Close()

	host = srv.URL
	require.NoError(t, performGetRequest("/score/leaderboard/g1"))
	assert.Equal(t, "/score/leaderboard/g1", gotPath)
}
