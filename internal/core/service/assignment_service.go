package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/esatic/assignment-app/internal/api/metrics"
	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

// AssignmentService implements the assignment lifecycle: CRUD, submission,
// grading, and the filtered paginated listings.
type AssignmentService struct {
	assignments ports.AssignmentRepository
	users       ports.UserRepository
	res         *resolver
	proj        *projector
	log         zerolog.Logger
}

func NewAssignmentService(
	assignments ports.AssignmentRepository,
	users ports.UserRepository,
	subjects ports.SubjectRepository,
	classes ports.ClassRepository,
	log zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		users:       users,
		res:         newResolver(users, subjects, classes, log),
		proj:        newProjector(users, subjects, classes, log),
		log:         log,
	}
}

// Create persists a new assignment. References that are empty or do not
// resolve are left unset; creation never fails because of a bad reference.
func (s *AssignmentService) Create(ctx context.Context, in ports.AssignmentCreateInput) (*ports.AssignmentView, error) {
	now := time.Now().UTC()
	a := &domain.Assignment{
		Name:        in.Name,
		DueDate:     in.DueDate,
		Submitted:   in.Submitted,
		Grade:       in.Grade,
		Remarks:     in.Remarks,
		Attachments: in.Attachments,
		AuthorID:    s.res.onCreate(ctx, colUsers, in.AuthorID),
		SubjectID:   s.res.onCreate(ctx, colSubjects, in.SubjectID),
		ClassID:     s.res.onCreate(ctx, colClasses, in.ClassID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.assignments.Save(ctx, a)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create assignment")
		return nil, err
	}

	metrics.AssignmentsCreatedTotal.Inc()
	s.log.Info().Str("assignment_id", saved.ID).Str("class_id", saved.ClassID).Msg("assignment created")

	return s.proj.assignment(ctx, saved), nil
}

func (s *AssignmentService) GetByID(ctx context.Context, id string) (*ports.AssignmentView, error) {
	a, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.proj.assignment(ctx, a), nil
}

// Update overwrites every scalar field with the payload value and applies
// reference patches: nil keeps, empty clears, unresolvable keeps.
func (s *AssignmentService) Update(ctx context.Context, id string, in ports.AssignmentUpdateInput) (*ports.AssignmentView, error) {
	a, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Name = in.Name
	a.DueDate = in.DueDate
	a.Submitted = in.Submitted
	a.Grade = in.Grade
	a.Remarks = in.Remarks
	a.AuthorID = s.res.onUpdate(ctx, colUsers, a.AuthorID, in.AuthorID)
	a.SubjectID = s.res.onUpdate(ctx, colSubjects, a.SubjectID, in.SubjectID)
	a.ClassID = s.res.onUpdate(ctx, colClasses, a.ClassID, in.ClassID)
	a.UpdatedAt = time.Now().UTC()

	saved, err := s.assignments.Save(ctx, a)
	if err != nil {
		s.log.Error().Err(err).Str("assignment_id", id).Msg("failed to update assignment")
		return nil, err
	}
	return s.proj.assignment(ctx, saved), nil
}

func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.assignments.FindByID(ctx, id); err != nil {
		return err
	}
	return s.assignments.Delete(ctx, id)
}

// Submit marks the assignment as handed in by the given student. The student
// must belong to the class the assignment is scoped to; both sides missing a
// class also fails. Attachments replace the existing list wholesale.
func (s *AssignmentService) Submit(ctx context.Context, id string, in ports.SubmitInput) (*ports.AssignmentView, error) {
	a, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	student, err := s.users.FindByID(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}

	if a.ClassID == "" || student.ClassID == "" || a.ClassID != student.ClassID {
		return nil, domain.ErrSubmissionNotAllowed
	}

	a.Submitted = true
	a.Attachments = in.Attachments
	a.UpdatedAt = time.Now().UTC()

	saved, err := s.assignments.Save(ctx, a)
	if err != nil {
		s.log.Error().Err(err).Str("assignment_id", id).Msg("failed to save submission")
		return nil, err
	}

	metrics.AssignmentsSubmittedTotal.Inc()
	s.log.Info().Str("assignment_id", id).Str("student_id", in.StudentID).Msg("assignment submitted")

	return s.proj.assignment(ctx, saved), nil
}

// Grade sets the grade and remarks. Submission is not required first; an
// unsubmitted assignment can be graded.
func (s *AssignmentService) Grade(ctx context.Context, id string, in ports.GradeInput) (*ports.AssignmentView, error) {
	a, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	grade := in.Grade
	a.Grade = &grade
	a.Remarks = in.Remarks
	a.UpdatedAt = time.Now().UTC()

	saved, err := s.assignments.Save(ctx, a)
	if err != nil {
		s.log.Error().Err(err).Str("assignment_id", id).Msg("failed to save grade")
		return nil, err
	}

	metrics.AssignmentsGradedTotal.Inc()
	return s.proj.assignment(ctx, saved), nil
}

func (s *AssignmentService) List(ctx context.Context, page ports.PageRequest) (*ports.Page[ports.AssignmentView], error) {
	return s.list(ctx, ports.AssignmentFilter{}, ports.SortDueDateDesc, page)
}

func (s *AssignmentService) ListSubmitted(ctx context.Context, page ports.PageRequest) (*ports.Page[ports.AssignmentView], error) {
	submitted := true
	return s.list(ctx, ports.AssignmentFilter{Submitted: &submitted}, ports.SortDueDateDesc, page)
}

// ListPending sorts ascending so the most overdue assignments come first.
func (s *AssignmentService) ListPending(ctx context.Context, page ports.PageRequest) (*ports.Page[ports.AssignmentView], error) {
	submitted := false
	return s.list(ctx, ports.AssignmentFilter{Submitted: &submitted}, ports.SortDueDateAsc, page)
}

func (s *AssignmentService) ListBySubject(ctx context.Context, subjectID string, page ports.PageRequest) (*ports.Page[ports.AssignmentView], error) {
	return s.list(ctx, ports.AssignmentFilter{SubjectID: subjectID}, ports.SortDueDateDesc, page)
}

func (s *AssignmentService) ListByStudent(ctx context.Context, studentID string, page ports.PageRequest) (*ports.Page[ports.AssignmentView], error) {
	return s.list(ctx, ports.AssignmentFilter{AuthorID: studentID}, ports.SortDueDateDesc, page)
}

// ListByTeacher resolves the teacher's subjects first: a teacher has no
// direct assignment reference, only the indirect one through subjects taught.
func (s *AssignmentService) ListByTeacher(ctx context.Context, teacherID string, page ports.PageRequest) (*ports.Page[ports.AssignmentView], error) {
	teacher, err := s.users.FindByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	subjectIDs := teacher.TeachingSubjectIDs
	if subjectIDs == nil {
		subjectIDs = []string{}
	}
	return s.list(ctx, ports.AssignmentFilter{SubjectIDIn: subjectIDs}, ports.SortNone, page)
}

func (s *AssignmentService) ListByClass(ctx context.Context, classID string, page ports.PageRequest) (*ports.Page[ports.AssignmentView], error) {
	return s.list(ctx, ports.AssignmentFilter{ClassID: classID}, ports.SortNone, page)
}

func (s *AssignmentService) list(ctx context.Context, filter ports.AssignmentFilter, sort ports.SortOrder, page ports.PageRequest) (*ports.Page[ports.AssignmentView], error) {
	page = page.Normalize()
	docs, total, err := s.assignments.Find(ctx, filter, sort, page)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list assignments")
		return nil, err
	}

	result := ports.NewPage(s.proj.assignments(ctx, docs), total, page)
	return &result, nil
}
