package service

import (
	"context"
	"testing"

	"github.com/esatic/assignment-app/internal/core/domain"
)

func newTestResolver() (*resolver, *stubUserRepo, *stubSubjectRepo, *stubClassRepo) {
	users := newStubUserRepo()
	subjects := newStubSubjectRepo()
	classes := newStubClassRepo()
	return newResolver(users, subjects, classes, discardLogger), users, subjects, classes
}

func TestResolver_OnCreate_EmptyIDLeavesUnset(t *testing.T) {
	r, _, _, _ := newTestResolver()

	if got := r.onCreate(context.Background(), colUsers, ""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestResolver_OnCreate_UnresolvableLeavesUnset(t *testing.T) {
	r, _, _, _ := newTestResolver()

	if got := r.onCreate(context.Background(), colSubjects, "nope"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestResolver_OnCreate_ResolvableKeepsID(t *testing.T) {
	r, users, _, _ := newTestResolver()
	u := users.add(&domain.User{Username: "alice"})

	if got := r.onCreate(context.Background(), colUsers, u.ID); got != u.ID {
		t.Errorf("expected %q, got %q", u.ID, got)
	}
}

func TestResolver_OnUpdate_NilKeepsCurrent(t *testing.T) {
	r, _, _, _ := newTestResolver()

	if got := r.onUpdate(context.Background(), colClasses, "current", nil); got != "current" {
		t.Errorf("expected current value kept, got %q", got)
	}
}

func TestResolver_OnUpdate_EmptyStringClears(t *testing.T) {
	r, _, _, _ := newTestResolver()
	empty := ""

	if got := r.onUpdate(context.Background(), colClasses, "current", &empty); got != "" {
		t.Errorf("expected cleared, got %q", got)
	}
}

func TestResolver_OnUpdate_UnresolvableKeepsCurrent(t *testing.T) {
	r, _, _, _ := newTestResolver()
	bad := "does-not-exist"

	if got := r.onUpdate(context.Background(), colSubjects, "current", &bad); got != "current" {
		t.Errorf("expected stale value preserved, got %q", got)
	}
}

func TestResolver_OnUpdate_ResolvableReplaces(t *testing.T) {
	r, _, subjects, _ := newTestResolver()
	s := subjects.add(&domain.Subject{Name: "Maths"})

	if got := r.onUpdate(context.Background(), colSubjects, "old", &s.ID); got != s.ID {
		t.Errorf("expected %q, got %q", s.ID, got)
	}
}
