// Package metrics defines and registers all custom Prometheus metrics for
// the assignment API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assignmentapp"

// AssignmentsCreatedTotal counts newly created assignments.
var AssignmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_created_total",
		Help:      "Total number of assignments created.",
	},
)

// AssignmentsSubmittedTotal counts successful student submissions.
var AssignmentsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_submitted_total",
		Help:      "Total number of assignments submitted by students.",
	},
)

// AssignmentsGradedTotal counts grading operations.
var AssignmentsGradedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_graded_total",
		Help:      "Total number of assignments graded.",
	},
)

// ResolutionWarningsTotal counts reference ids that could not be resolved
// during create/update. The operation still succeeds; this counter is the
// only aggregate trace of the degradation.
// Label:
//   - collection: the target collection of the failed lookup (users,
//     subjects, classes)
var ResolutionWarningsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolution_warnings_total",
		Help:      "Total number of unresolvable entity references tolerated during create/update.",
	},
	[]string{"collection"},
)

// RosterChangesTotal counts roster mutations.
// Label:
//   - op: "add" or "remove"
var RosterChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_changes_total",
		Help:      "Total number of class roster changes, by operation.",
	},
	[]string{"op"},
)

// SeedJobsTotal counts background seed runs.
// Label:
//   - result: "ok", "skipped" (lock held) or "error"
var SeedJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_jobs_total",
		Help:      "Total number of bulk data generation runs, by result.",
	},
	[]string{"result"},
)
