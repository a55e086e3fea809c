package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/esatic/assignment-app/internal/api/metrics"
	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

// ClassService implements class CRUD and roster management. The roster is
// stored on the student side only (User.ClassID); class views derive their
// member list by query, so add/remove touch a single document each.
type ClassService struct {
	classes     ports.ClassRepository
	users       ports.UserRepository
	assignments ports.AssignmentRepository
	proj        *projector
	log         zerolog.Logger
}

func NewClassService(
	classes ports.ClassRepository,
	users ports.UserRepository,
	subjects ports.SubjectRepository,
	assignments ports.AssignmentRepository,
	log zerolog.Logger,
) *ClassService {
	return &ClassService{
		classes:     classes,
		users:       users,
		assignments: assignments,
		proj:        newProjector(users, subjects, classes, log),
		log:         log,
	}
}

func (s *ClassService) List(ctx context.Context) ([]*ports.ClassView, error) {
	classes, err := s.classes.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.ClassView, 0, len(classes))
	for _, c := range classes {
		v, err := s.proj.classView(ctx, c)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *ClassService) GetByID(ctx context.Context, id string) (*ports.ClassView, error) {
	c, err := s.classes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.proj.classView(ctx, c)
}

func (s *ClassService) Create(ctx context.Context, in ports.ClassInput) (*ports.ClassView, error) {
	now := time.Now().UTC()
	c := &domain.Class{
		Name:        in.Name,
		Year:        in.Year,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.classes.Save(ctx, c)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create class")
		return nil, err
	}
	return s.proj.classView(ctx, saved)
}

func (s *ClassService) Update(ctx context.Context, id string, in ports.ClassInput) (*ports.ClassView, error) {
	c, err := s.classes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.Year = in.Year
	c.Description = in.Description
	c.UpdatedAt = time.Now().UTC()

	saved, err := s.classes.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	return s.proj.classView(ctx, saved)
}

// Delete clears the class reference on every user still pointing at this
// class before removing the record, so no dangling foreign keys survive.
// The cleanup saves are sequential; a failure mid-way leaves some users
// already detached, which is acceptable (no cross-collection transaction).
func (s *ClassService) Delete(ctx context.Context, id string) error {
	if _, err := s.classes.FindByID(ctx, id); err != nil {
		return err
	}

	members, err := s.users.FindByClassID(ctx, id)
	if err != nil {
		return err
	}
	for _, u := range members {
		u.ClassID = ""
		u.UpdatedAt = time.Now().UTC()
		if _, err := s.users.Save(ctx, u); err != nil {
			return err
		}
	}

	if err := s.assignments.ClearClassRefs(ctx, id); err != nil {
		return err
	}

	return s.classes.Delete(ctx, id)
}

// AddStudent assigns the student to the class. The target user must have
// role STUDENT.
func (s *ClassService) AddStudent(ctx context.Context, classID, studentID string) (*ports.ClassView, error) {
	c, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	student, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != domain.RoleStudent {
		return nil, domain.ErrNotAStudent
	}

	student.ClassID = classID
	student.UpdatedAt = time.Now().UTC()
	if _, err := s.users.Save(ctx, student); err != nil {
		return nil, err
	}

	metrics.RosterChangesTotal.WithLabelValues("add").Inc()
	s.log.Info().Str("class_id", classID).Str("student_id", studentID).Msg("student added to class")

	return s.proj.classView(ctx, c)
}

// RemoveStudent clears the student's class reference only when it still
// points at this class, so a student who has since moved to another class is
// left alone.
func (s *ClassService) RemoveStudent(ctx context.Context, classID, studentID string) (*ports.ClassView, error) {
	c, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	student, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if student.ClassID == classID {
		student.ClassID = ""
		student.UpdatedAt = time.Now().UTC()
		if _, err := s.users.Save(ctx, student); err != nil {
			return nil, err
		}
		metrics.RosterChangesTotal.WithLabelValues("remove").Inc()
	}

	return s.proj.classView(ctx, c)
}
