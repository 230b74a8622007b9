package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncLeaderboardComputed()
	s.IncLeaderboardComputed()
	s.IncScorecardsSaved()
	s.IncSlackNotifFailed()
	s.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.LeaderboardComputed))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ScorecardsSaved))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.ScorecardsRemoved))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.SlackNotifFailed))
	assert.Equal(t, 1.5, testutil.ToFloat64(s.StartupTimeSeconds))
}

func TestMetricsHandlerExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncEventsPublished()
	s.ObserveLeaderboardDuration(0.02)

	srv := httptest.NewServer(NewMetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(body), "golf_events_published_total 1"))
	assert.True(t, strings.Contains(string(body), "golf_leaderboard_duration_seconds_count 1"))
}
