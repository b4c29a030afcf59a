// Package metrics exposes Prometheus counters for the daemon. All
// collectors register on the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal counts interpreted command submissions by how
	// they resolved (secret, topic, project, clear, unknown).
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retrofolio_commands_total",
		Help: "Interpreted command submissions by resolution kind.",
	}, []string{"kind"})

	// AchievementsUnlocked counts first-time achievement unlocks.
	AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "retrofolio_achievements_unlocked_total",
		Help: "Achievements unlocked for the first time.",
	})

	// LevelUps counts level gains.
	LevelUps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "retrofolio_level_ups_total",
		Help: "Level-up events.",
	})

	// AssistantRequests counts assistant round-trips by outcome
	// (ok, fallback).
	AssistantRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retrofolio_assistant_requests_total",
		Help: "Assistant requests by outcome.",
	}, []string{"outcome"})
)
