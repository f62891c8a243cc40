// Package metrics defines the custom Prometheus metrics of the community API.
// They are registered with the default registry on import and exposed on
// /metrics next to the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "community"

// ── Auth ──────────────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register/login/logout calls.
// Labels:
//   - operation: "register", "login" or "logout"
//   - result: "ok" or the failing error kind (e.g. "conflict", "unauthenticated")
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Posts ─────────────────────────────────────────────────────────────────────

var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// LikesToggledTotal counts like toggles.
// Label:
//   - action: "like" or "unlike", the state the toggle moved to
var LikesToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_toggled_total",
		Help:      "Total number of like toggles, by resulting action.",
	},
	[]string{"action"},
)

// ── Administration ────────────────────────────────────────────────────────────

var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted by administrators.",
	},
)

// CascadePostsDeletedTotal counts posts removed as part of a user deletion.
var CascadePostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_posts_deleted_total",
		Help:      "Total number of posts removed by cascading user deletions.",
	},
)

var PostsModeratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_moderated_total",
		Help:      "Total number of posts deleted by administrators.",
	},
)

// RoleChangesTotal counts role transitions.
// Label:
//   - direction: "promote" or "demote"
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role changes, by direction.",
	},
	[]string{"direction"},
)
