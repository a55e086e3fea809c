package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

// projector maps persisted entities to their flat response views. Display
// names are looked up at projection time and never stored; a reference
// whose referent is gone projects its id with a null name instead of
// failing the read.
type projector struct {
	users    ports.UserRepository
	subjects ports.SubjectRepository
	classes  ports.ClassRepository
	log      zerolog.Logger
}

func newProjector(users ports.UserRepository, subjects ports.SubjectRepository, classes ports.ClassRepository, log zerolog.Logger) *projector {
	return &projector{users: users, subjects: subjects, classes: classes, log: log}
}

// refCache memoizes lookups within a single projection call so a page of
// assignments hits each referenced document at most once.
type refCache struct {
	users    map[string]*domain.User
	subjects map[string]*domain.Subject
	classes  map[string]*domain.Class
}

func newRefCache() *refCache {
	return &refCache{
		users:    make(map[string]*domain.User),
		subjects: make(map[string]*domain.Subject),
		classes:  make(map[string]*domain.Class),
	}
}

func (p *projector) assignment(ctx context.Context, a *domain.Assignment) *ports.AssignmentView {
	return p.assignmentCached(ctx, a, newRefCache())
}

func (p *projector) assignments(ctx context.Context, list []*domain.Assignment) []ports.AssignmentView {
	cache := newRefCache()
	views := make([]ports.AssignmentView, 0, len(list))
	for _, a := range list {
		views = append(views, *p.assignmentCached(ctx, a, cache))
	}
	return views
}

func (p *projector) assignmentCached(ctx context.Context, a *domain.Assignment, cache *refCache) *ports.AssignmentView {
	v := &ports.AssignmentView{
		ID:          a.ID,
		Name:        a.Name,
		DueDate:     a.DueDate,
		Submitted:   a.Submitted,
		Grade:       a.Grade,
		Remarks:     a.Remarks,
		Attachments: a.Attachments,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	if a.AuthorID != "" {
		v.AuthorID = strPtr(a.AuthorID)
		if u := p.user(ctx, a.AuthorID, cache); u != nil {
			v.AuthorName = strPtr(u.FullName())
		}
	}
	if a.SubjectID != "" {
		v.SubjectID = strPtr(a.SubjectID)
		if s := p.subject(ctx, a.SubjectID, cache); s != nil {
			v.SubjectName = strPtr(s.Name)
		}
	}
	if a.ClassID != "" {
		v.ClassID = strPtr(a.ClassID)
		if c := p.class(ctx, a.ClassID, cache); c != nil {
			v.ClassName = strPtr(c.Name)
		}
	}
	return v
}

func (p *projector) subjectView(ctx context.Context, s *domain.Subject) *ports.SubjectView {
	v := &ports.SubjectView{
		ID:          s.ID,
		Name:        s.Name,
		ImageURL:    s.ImageURL,
		Color:       s.Color,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.TeacherID != "" {
		v.TeacherID = strPtr(s.TeacherID)
		if t := p.user(ctx, s.TeacherID, newRefCache()); t != nil {
			v.TeacherName = strPtr(t.FullName())
		}
	}
	return v
}

// classView derives the roster by querying users whose classId points here.
func (p *projector) classView(ctx context.Context, c *domain.Class) (*ports.ClassView, error) {
	members, err := p.users.FindByClassID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	students := make([]ports.StudentInfo, 0, len(members))
	for _, u := range members {
		students = append(students, ports.StudentInfo{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
		})
	}

	return &ports.ClassView{
		ID:          c.ID,
		Name:        c.Name,
		Year:        c.Year,
		Description: c.Description,
		Students:    students,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}, nil
}

func (p *projector) userView(ctx context.Context, u *domain.User) *ports.UserView {
	v := &ports.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		PhotoURL:  u.PhotoURL,
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if u.Role == domain.RoleStudent && u.ClassID != "" {
		if c := p.class(ctx, u.ClassID, newRefCache()); c != nil {
			v.ClassInfo = &ports.ClassInfo{ID: c.ID, Name: c.Name, Year: c.Year}
		}
	}
	if u.Role == domain.RoleTeacher && len(u.TeachingSubjectIDs) > 0 {
		subjects, err := p.subjects.FindByIDs(ctx, u.TeachingSubjectIDs)
		if err != nil {
			p.log.Warn().Err(err).Str("user_id", u.ID).Msg("failed to load teaching subjects")
		}
		for _, s := range subjects {
			v.TeachingSubjects = append(v.TeachingSubjects, ports.SubjectInfo{
				ID:       s.ID,
				Name:     s.Name,
				ImageURL: s.ImageURL,
				Color:    s.Color,
			})
		}
	}
	return v
}

func (p *projector) user(ctx context.Context, id string, cache *refCache) *domain.User {
	if u, ok := cache.users[id]; ok {
		return u
	}
	u, err := p.users.FindByID(ctx, id)
	if err != nil {
		u = nil
	}
	cache.users[id] = u
	return u
}

func (p *projector) subject(ctx context.Context, id string, cache *refCache) *domain.Subject {
	if s, ok := cache.subjects[id]; ok {
		return s
	}
	s, err := p.subjects.FindByID(ctx, id)
	if err != nil {
		s = nil
	}
	cache.subjects[id] = s
	return s
}

func (p *projector) class(ctx context.Context, id string, cache *refCache) *domain.Class {
	if c, ok := cache.classes[id]; ok {
		return c
	}
	c, err := p.classes.FindByID(ctx, id)
	if err != nil {
		c = nil
	}
	cache.classes[id] = c
	return c
}

func strPtr(s string) *string { return &s }
