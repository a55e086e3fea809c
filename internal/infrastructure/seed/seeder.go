// Package seed generates demo data in the background. A setup endpoint
// enqueues a job and returns immediately; the single worker drives the
// regular application services so seeded records go through the same
// validation and projection paths as user traffic.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/esatic/assignment-app/internal/api/metrics"
	"github.com/esatic/assignment-app/internal/core/ports"
)

const channelBuffer = 16

// Job describes one seed run. Zero counts fall back to the defaults below.
type Job struct {
	Dataset             string
	Classes             int
	StudentsPerClass    int
	Subjects            int
	AssignmentsPerClass int
}

const (
	defaultClasses             = 2
	defaultStudentsPerClass    = 5
	defaultSubjects            = 4
	defaultAssignmentsPerClass = 6
)

// Lock serialises seed runs per dataset name.
type Lock interface {
	Acquire(ctx context.Context, dataset string) (bool, error)
	Release(ctx context.Context, dataset string) error
}

// Seeder owns the background worker. Enqueue is fire-and-forget: failures
// inside a run are logged and counted, never returned to the caller.
type Seeder struct {
	jobs chan Job
	lock Lock

	auth        ports.AuthService
	users       ports.UserService
	classes     ports.ClassService
	subjects    ports.SubjectService
	assignments ports.AssignmentService

	log zerolog.Logger
}

func NewSeeder(lock Lock, auth ports.AuthService, users ports.UserService, classes ports.ClassService, subjects ports.SubjectService, assignments ports.AssignmentService, log zerolog.Logger) *Seeder {
	return &Seeder{
		jobs:        make(chan Job, channelBuffer),
		lock:        lock,
		auth:        auth,
		users:       users,
		classes:     classes,
		subjects:    subjects,
		assignments: assignments,
		log:         log,
	}
}

// Start launches the worker goroutine. The worker stops when ctx is
// cancelled.
func (s *Seeder) Start(ctx context.Context) {
	go s.run(ctx)
}

// Enqueue hands a job to the worker without blocking. It returns false when
// the queue is full.
func (s *Seeder) Enqueue(job Job) bool {
	if job.Dataset == "" {
		job.Dataset = "default"
	}
	select {
	case s.jobs <- job:
		return true
	default:
		s.log.Warn().Str("dataset", job.Dataset).Msg("seed queue full, job dropped")
		return false
	}
}

func (s *Seeder) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-s.jobs:
			if !ok {
				return
			}
			s.process(ctx, job)
		}
	}
}

func (s *Seeder) process(ctx context.Context, job Job) {
	held, err := s.lock.Acquire(ctx, job.Dataset)
	if err != nil {
		metrics.SeedJobsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("dataset", job.Dataset).Msg("seed lock check failed")
		return
	}
	if !held {
		metrics.SeedJobsTotal.WithLabelValues("skipped").Inc()
		s.log.Info().Str("dataset", job.Dataset).Msg("seed already ran, skipping")
		return
	}

	start := time.Now()
	if err := s.generate(ctx, job); err != nil {
		metrics.SeedJobsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("dataset", job.Dataset).Msg("seed run failed")
		// Release so a fixed deployment can retry without waiting out the TTL.
		if relErr := s.lock.Release(ctx, job.Dataset); relErr != nil {
			s.log.Error().Err(relErr).Str("dataset", job.Dataset).Msg("seed lock release failed")
		}
		return
	}

	metrics.SeedJobsTotal.WithLabelValues("ok").Inc()
	s.log.Info().
		Str("dataset", job.Dataset).
		Dur("elapsed", time.Since(start)).
		Msg("seed run complete")
}

func (s *Seeder) generate(ctx context.Context, job Job) error {
	classes := job.Classes
	if classes <= 0 {
		classes = defaultClasses
	}
	studentsPerClass := job.StudentsPerClass
	if studentsPerClass <= 0 {
		studentsPerClass = defaultStudentsPerClass
	}
	subjectCount := job.Subjects
	if subjectCount <= 0 {
		subjectCount = defaultSubjects
	}
	assignmentsPerClass := job.AssignmentsPerClass
	if assignmentsPerClass <= 0 {
		assignmentsPerClass = defaultAssignmentsPerClass
	}

	teacherIDs := make([]string, 0, subjectCount)
	for i := 0; i < subjectCount; i++ {
		res, err := s.auth.Register(ctx, ports.RegisterInput{
			FirstName: fmt.Sprintf("Teacher%d", i+1),
			LastName:  job.Dataset,
			Username:  s.handle("teacher"),
			Email:     s.email("teacher"),
			Password:  uuid.NewString(),
			Role:      "TEACHER",
		})
		if err != nil {
			return fmt.Errorf("seed teacher %d: %w", i+1, err)
		}
		teacherIDs = append(teacherIDs, res.User.ID)
	}

	subjectIDs := make([]string, 0, subjectCount)
	for i := 0; i < subjectCount; i++ {
		teacherID := teacherIDs[i]
		sub, err := s.subjects.Create(ctx, ports.SubjectInput{
			Name:      fmt.Sprintf("Subject %d (%s)", i+1, job.Dataset),
			Color:     randomColor(),
			TeacherID: &teacherID,
		})
		if err != nil {
			return fmt.Errorf("seed subject %d: %w", i+1, err)
		}
		subjectIDs = append(subjectIDs, sub.ID)

		// Mirror the assignment onto the teacher so lookups by teacher see
		// the subject from both sides.
		patch := ports.ProfilePatch{TeachingSubjectIDs: []string{sub.ID}}
		if _, err := s.users.UpdateProfile(ctx, teacherID, patch); err != nil {
			return fmt.Errorf("seed teacher subjects: %w", err)
		}
	}

	year := fmt.Sprintf("%d", time.Now().Year())
	for c := 0; c < classes; c++ {
		class, err := s.classes.Create(ctx, ports.ClassInput{
			Name: fmt.Sprintf("Class %d (%s)", c+1, job.Dataset),
			Year: year,
		})
		if err != nil {
			return fmt.Errorf("seed class %d: %w", c+1, err)
		}

		studentIDs := make([]string, 0, studentsPerClass)
		for st := 0; st < studentsPerClass; st++ {
			res, err := s.auth.Register(ctx, ports.RegisterInput{
				FirstName: fmt.Sprintf("Student%d", st+1),
				LastName:  class.Name,
				Username:  s.handle("student"),
				Email:     s.email("student"),
				Password:  uuid.NewString(),
				Role:      "STUDENT",
			})
			if err != nil {
				return fmt.Errorf("seed student: %w", err)
			}
			if _, err := s.classes.AddStudent(ctx, class.ID, res.User.ID); err != nil {
				return fmt.Errorf("seed roster: %w", err)
			}
			studentIDs = append(studentIDs, res.User.ID)
		}

		for a := 0; a < assignmentsPerClass; a++ {
			in := ports.AssignmentCreateInput{
				Name:      fmt.Sprintf("Devoir %d (%s)", a+1, class.Name),
				DueDate:   time.Now().UTC().AddDate(0, 0, rand.Intn(30)+1),
				SubjectID: subjectIDs[a%len(subjectIDs)],
				ClassID:   class.ID,
				AuthorID:  studentIDs[a%len(studentIDs)],
			}
			if _, err := s.assignments.Create(ctx, in); err != nil {
				return fmt.Errorf("seed assignment: %w", err)
			}
		}
	}
	return nil
}

// handle derives a unique login from a uuid so repeated runs never collide
// on the unique username index.
func (s *Seeder) handle(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

func (s *Seeder) email(prefix string) string {
	return fmt.Sprintf("%s-%s@seed.local", prefix, uuid.NewString()[:8])
}

var seedColors = []string{"#1abc9c", "#3498db", "#9b59b6", "#e67e22", "#e74c3c", "#2ecc71"}

func randomColor() string {
	return seedColors[rand.Intn(len(seedColors))]
}
