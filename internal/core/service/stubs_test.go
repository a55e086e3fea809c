package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   []*domain.User
	seq     int
	saveErr error
}

func newStubUserRepo() *stubUserRepo { return &stubUserRepo{} }

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	if u.ID == "" {
		r.seq++
		u.ID = fmt.Sprintf("user-%d", r.seq)
	}
	clone := cloneUser(u)
	r.users = append(r.users, clone)
	return cloneUser(clone)
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NewNotFound("User", id)
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NewNotFound("User", username)
}

func (r *stubUserRepo) FindByClassID(_ context.Context, classID string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.ClassID == classID {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	if u.ID == "" {
		r.seq++
		u.ID = fmt.Sprintf("user-%d", r.seq)
	}
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = cloneUser(u)
			return cloneUser(u), nil
		}
	}
	r.users = append(r.users, cloneUser(u))
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFound("User", id)
}

func (r *stubUserRepo) RemoveTeachingSubject(_ context.Context, subjectID string) error {
	for _, u := range r.users {
		kept := u.TeachingSubjectIDs[:0]
		for _, id := range u.TeachingSubjectIDs {
			if id != subjectID {
				kept = append(kept, id)
			}
		}
		u.TeachingSubjectIDs = kept
	}
	return nil
}

type stubClassRepo struct {
	classes []*domain.Class
	seq     int
}

func newStubClassRepo() *stubClassRepo { return &stubClassRepo{} }

func (r *stubClassRepo) add(c *domain.Class) *domain.Class {
	if c.ID == "" {
		r.seq++
		c.ID = fmt.Sprintf("class-%d", r.seq)
	}
	clone := *c
	r.classes = append(r.classes, &clone)
	copy2 := clone
	return &copy2
}

func (r *stubClassRepo) FindByID(_ context.Context, id string) (*domain.Class, error) {
	for _, c := range r.classes {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.NewNotFound("Class", id)
}

func (r *stubClassRepo) FindAll(_ context.Context) ([]*domain.Class, error) {
	out := make([]*domain.Class, 0, len(r.classes))
	for _, c := range r.classes {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubClassRepo) Save(_ context.Context, c *domain.Class) (*domain.Class, error) {
	if c.ID == "" {
		r.seq++
		c.ID = fmt.Sprintf("class-%d", r.seq)
	}
	for i, existing := range r.classes {
		if existing.ID == c.ID {
			clone := *c
			r.classes[i] = &clone
			out := clone
			return &out, nil
		}
	}
	clone := *c
	r.classes = append(r.classes, &clone)
	out := clone
	return &out, nil
}

func (r *stubClassRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.classes {
		if c.ID == id {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFound("Class", id)
}

type stubSubjectRepo struct {
	subjects []*domain.Subject
	seq      int
}

func newStubSubjectRepo() *stubSubjectRepo { return &stubSubjectRepo{} }

func (r *stubSubjectRepo) add(s *domain.Subject) *domain.Subject {
	if s.ID == "" {
		r.seq++
		s.ID = fmt.Sprintf("subject-%d", r.seq)
	}
	clone := *s
	r.subjects = append(r.subjects, &clone)
	out := clone
	return &out
}

func (r *stubSubjectRepo) FindByID(_ context.Context, id string) (*domain.Subject, error) {
	for _, s := range r.subjects {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.NewNotFound("Subject", id)
}

func (r *stubSubjectRepo) FindAll(_ context.Context) ([]*domain.Subject, error) {
	out := make([]*domain.Subject, 0, len(r.subjects))
	for _, s := range r.subjects {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubSubjectRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Subject, error) {
	var out []*domain.Subject
	for _, s := range r.subjects {
		for _, id := range ids {
			if s.ID == id {
				clone := *s
				out = append(out, &clone)
				break
			}
		}
	}
	return out, nil
}

func (r *stubSubjectRepo) Save(_ context.Context, s *domain.Subject) (*domain.Subject, error) {
	if s.ID == "" {
		r.seq++
		s.ID = fmt.Sprintf("subject-%d", r.seq)
	}
	for i, existing := range r.subjects {
		if existing.ID == s.ID {
			clone := *s
			r.subjects[i] = &clone
			out := clone
			return &out, nil
		}
	}
	clone := *s
	r.subjects = append(r.subjects, &clone)
	out := clone
	return &out, nil
}

func (r *stubSubjectRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.subjects {
		if s.ID == id {
			r.subjects = append(r.subjects[:i], r.subjects[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFound("Subject", id)
}

type stubAssignmentRepo struct {
	assignments []*domain.Assignment
	seq         int
	saveErr     error
}

func newStubAssignmentRepo() *stubAssignmentRepo { return &stubAssignmentRepo{} }

func (r *stubAssignmentRepo) add(a *domain.Assignment) *domain.Assignment {
	if a.ID == "" {
		r.seq++
		a.ID = fmt.Sprintf("assignment-%d", r.seq)
	}
	clone := cloneAssignment(a)
	r.assignments = append(r.assignments, clone)
	return cloneAssignment(clone)
}

func (r *stubAssignmentRepo) FindByID(_ context.Context, id string) (*domain.Assignment, error) {
	for _, a := range r.assignments {
		if a.ID == id {
			return cloneAssignment(a), nil
		}
	}
	return nil, domain.NewNotFound("Assignment", id)
}

func (r *stubAssignmentRepo) Save(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	if a.ID == "" {
		r.seq++
		a.ID = fmt.Sprintf("assignment-%d", r.seq)
	}
	for i, existing := range r.assignments {
		if existing.ID == a.ID {
			r.assignments[i] = cloneAssignment(a)
			return cloneAssignment(a), nil
		}
	}
	r.assignments = append(r.assignments, cloneAssignment(a))
	return cloneAssignment(a), nil
}

func (r *stubAssignmentRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.assignments {
		if a.ID == id {
			r.assignments = append(r.assignments[:i], r.assignments[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFound("Assignment", id)
}

// Find applies the same filters and sorts the real Mongo repo would use.
func (r *stubAssignmentRepo) Find(_ context.Context, f ports.AssignmentFilter, order ports.SortOrder, page ports.PageRequest) ([]*domain.Assignment, int64, error) {
	var matched []*domain.Assignment
	for _, a := range r.assignments {
		if f.Submitted != nil && a.Submitted != *f.Submitted {
			continue
		}
		if f.SubjectID != "" && a.SubjectID != f.SubjectID {
			continue
		}
		if f.SubjectIDIn != nil {
			found := false
			for _, id := range f.SubjectIDIn {
				if a.SubjectID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if f.AuthorID != "" && a.AuthorID != f.AuthorID {
			continue
		}
		if f.ClassID != "" && a.ClassID != f.ClassID {
			continue
		}
		matched = append(matched, cloneAssignment(a))
	}

	switch order {
	case ports.SortDueDateAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].DueDate.Before(matched[j].DueDate) })
	case ports.SortDueDateDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].DueDate.After(matched[j].DueDate) })
	}

	total := int64(len(matched))

	page = page.Normalize()
	skip := int(page.Skip())
	if skip > len(matched) {
		return []*domain.Assignment{}, total, nil
	}
	end := skip + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubAssignmentRepo) ClearSubjectRefs(_ context.Context, subjectID string) error {
	for _, a := range r.assignments {
		if a.SubjectID == subjectID {
			a.SubjectID = ""
		}
	}
	return nil
}

func (r *stubAssignmentRepo) ClearClassRefs(_ context.Context, classID string) error {
	for _, a := range r.assignments {
		if a.ClassID == classID {
			a.ClassID = ""
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Clone helpers
// ---------------------------------------------------------------------------

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.TeachingSubjectIDs != nil {
		clone.TeachingSubjectIDs = append([]string(nil), u.TeachingSubjectIDs...)
	}
	return &clone
}

func cloneAssignment(a *domain.Assignment) *domain.Assignment {
	clone := *a
	if a.Attachments != nil {
		clone.Attachments = append([]string(nil), a.Attachments...)
	}
	if a.Grade != nil {
		g := *a.Grade
		clone.Grade = &g
	}
	return &clone
}
