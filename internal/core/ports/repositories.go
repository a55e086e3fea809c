package ports

import (
	"context"

	"github.com/esatic/assignment-app/internal/core/domain"
)

// SortOrder selects the due-date ordering applied to assignment listings.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortDueDateDesc
	SortDueDateAsc
)

// AssignmentFilter narrows assignment listings. Zero values mean no filter.
// A non-nil SubjectIDIn restricts results to assignments whose subject is in
// the set; an empty set matches nothing.
type AssignmentFilter struct {
	Submitted   *bool
	SubjectID   string
	SubjectIDIn []string
	AuthorID    string
	ClassID     string
}

// AssignmentRepository defines persistence operations for assignments.
type AssignmentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Assignment, error)
	// Save inserts when the id is empty and replaces the document otherwise.
	Save(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
	Delete(ctx context.Context, id string) error
	// Find returns one page of assignments matching filter plus the total
	// count of matches.
	Find(ctx context.Context, filter AssignmentFilter, sort SortOrder, page PageRequest) ([]*domain.Assignment, int64, error)
	// ClearSubjectRefs unsets the subject reference on every assignment
	// pointing at subjectID. Used when a subject is deleted.
	ClearSubjectRefs(ctx context.Context, subjectID string) error
	// ClearClassRefs unsets the class reference on every assignment pointing
	// at classID. Used when a class is deleted.
	ClearClassRefs(ctx context.Context, classID string) error
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByClassID(ctx context.Context, classID string) ([]*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// RemoveTeachingSubject pulls subjectID out of every teacher's
	// teaching-subjects list. Used when a subject is deleted.
	RemoveTeachingSubject(ctx context.Context, subjectID string) error
}

// ClassRepository defines persistence operations for classes.
type ClassRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Class, error)
	FindAll(ctx context.Context) ([]*domain.Class, error)
	Save(ctx context.Context, c *domain.Class) (*domain.Class, error)
	Delete(ctx context.Context, id string) error
}

// SubjectRepository defines persistence operations for subjects.
type SubjectRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Subject, error)
	FindAll(ctx context.Context) ([]*domain.Subject, error)
	// FindByIDs returns the subjects whose id is in ids; missing ids are
	// silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Subject, error)
	Save(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	Delete(ctx context.Context, id string) error
}
