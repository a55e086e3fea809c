package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/esatic/assignment-app/internal/api/metrics"
	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

// Collection names used for resolution logging and metrics labels.
const (
	colUsers    = "users"
	colSubjects = "subjects"
	colClasses  = "classes"
)

// resolver verifies that a candidate reference id points at a live entity.
// Resolution failures are tolerated: the assignment record always wins over
// strict referential integrity, so a failed lookup is logged and counted but
// never returned as an error.
type resolver struct {
	users    ports.UserRepository
	subjects ports.SubjectRepository
	classes  ports.ClassRepository
	log      zerolog.Logger
}

func newResolver(users ports.UserRepository, subjects ports.SubjectRepository, classes ports.ClassRepository, log zerolog.Logger) *resolver {
	return &resolver{users: users, subjects: subjects, classes: classes, log: log}
}

// onCreate resolves a reference for a create operation: an empty or
// unresolvable id leaves the reference unset.
func (r *resolver) onCreate(ctx context.Context, collection, id string) string {
	if id == "" {
		return ""
	}
	if r.exists(ctx, collection, id) {
		return id
	}
	r.warn(collection, id, "create")
	return ""
}

// onUpdate resolves a reference patch for an update operation:
//   - nil patch: the field was not provided, keep the current value;
//   - empty string: explicitly clear the reference;
//   - non-empty but unresolvable: keep the current (possibly stale) value.
func (r *resolver) onUpdate(ctx context.Context, collection, current string, patch *string) string {
	if patch == nil {
		return current
	}
	if *patch == "" {
		return ""
	}
	if r.exists(ctx, collection, *patch) {
		return *patch
	}
	r.warn(collection, *patch, "update")
	return current
}

func (r *resolver) exists(ctx context.Context, collection, id string) bool {
	var err error
	switch collection {
	case colUsers:
		_, err = r.users.FindByID(ctx, id)
	case colSubjects:
		_, err = r.subjects.FindByID(ctx, id)
	case colClasses:
		_, err = r.classes.FindByID(ctx, id)
	default:
		return false
	}
	if err == nil {
		return true
	}
	if !errors.Is(err, domain.ErrNotFound) {
		// Store failure, not a benign absence. Still tolerated here, but
		// logged at error level so it is visible.
		r.log.Error().Err(err).Str("collection", collection).Str("id", id).Msg("reference lookup failed")
	}
	return false
}

func (r *resolver) warn(collection, id, op string) {
	metrics.ResolutionWarningsTotal.WithLabelValues(collection).Inc()
	r.log.Warn().Str("collection", collection).Str("id", id).Str("op", op).Msg("unresolvable reference ignored")
}
