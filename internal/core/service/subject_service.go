package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

// SubjectService implements subject CRUD. The optional teacher reference
// follows the same tolerant resolution policy as assignment references.
type SubjectService struct {
	subjects    ports.SubjectRepository
	users       ports.UserRepository
	assignments ports.AssignmentRepository
	res         *resolver
	proj        *projector
	log         zerolog.Logger
}

func NewSubjectService(
	subjects ports.SubjectRepository,
	users ports.UserRepository,
	classes ports.ClassRepository,
	assignments ports.AssignmentRepository,
	log zerolog.Logger,
) *SubjectService {
	return &SubjectService{
		subjects:    subjects,
		users:       users,
		assignments: assignments,
		res:         newResolver(users, subjects, classes, log),
		proj:        newProjector(users, subjects, classes, log),
		log:         log,
	}
}

func (s *SubjectService) List(ctx context.Context) ([]*ports.SubjectView, error) {
	subjects, err := s.subjects.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.SubjectView, 0, len(subjects))
	for _, sub := range subjects {
		views = append(views, s.proj.subjectView(ctx, sub))
	}
	return views, nil
}

func (s *SubjectService) GetByID(ctx context.Context, id string) (*ports.SubjectView, error) {
	sub, err := s.subjects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.proj.subjectView(ctx, sub), nil
}

func (s *SubjectService) Create(ctx context.Context, in ports.SubjectInput) (*ports.SubjectView, error) {
	now := time.Now().UTC()
	sub := &domain.Subject{
		Name:        in.Name,
		ImageURL:    in.ImageURL,
		Color:       in.Color,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.TeacherID != nil {
		sub.TeacherID = s.res.onCreate(ctx, colUsers, *in.TeacherID)
	}

	saved, err := s.subjects.Save(ctx, sub)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create subject")
		return nil, err
	}
	return s.proj.subjectView(ctx, saved), nil
}

func (s *SubjectService) Update(ctx context.Context, id string, in ports.SubjectInput) (*ports.SubjectView, error) {
	sub, err := s.subjects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.Name = in.Name
	sub.ImageURL = in.ImageURL
	sub.Color = in.Color
	sub.Description = in.Description
	sub.TeacherID = s.res.onUpdate(ctx, colUsers, sub.TeacherID, in.TeacherID)
	sub.UpdatedAt = time.Now().UTC()

	saved, err := s.subjects.Save(ctx, sub)
	if err != nil {
		return nil, err
	}
	return s.proj.subjectView(ctx, saved), nil
}

// Delete removes the subject after nulling out dangling references: the
// subject is pulled from every teacher's teaching list and cleared on every
// assignment pointing at it. Dependents are kept, never cascade-deleted.
func (s *SubjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.subjects.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.users.RemoveTeachingSubject(ctx, id); err != nil {
		return err
	}
	if err := s.assignments.ClearSubjectRefs(ctx, id); err != nil {
		return err
	}

	return s.subjects.Delete(ctx, id)
}
