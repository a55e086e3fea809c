package ports

import (
	"context"
	"time"
)

// AssignmentCreateInput carries all data needed to create an assignment.
// Reference ids that are empty or unresolvable leave the reference unset;
// creation never fails because of a missing reference.
type AssignmentCreateInput struct {
	Name        string
	DueDate     time.Time
	Submitted   bool
	Grade       *float64
	Remarks     string
	Attachments []string
	AuthorID    string
	SubjectID   string
	ClassID     string
}

// AssignmentUpdateInput carries a full scalar overwrite plus reference
// patches. For each reference: nil means keep the current value, an empty
// string explicitly clears it, and a non-empty id that does not resolve
// keeps the current value (the failure is logged, not surfaced).
type AssignmentUpdateInput struct {
	Name      string
	DueDate   time.Time
	Submitted bool
	Grade     *float64
	Remarks   string
	AuthorID  *string
	SubjectID *string
	ClassID   *string
}

// SubmitInput carries a student's submission. Attachments replace the
// assignment's attachment list wholesale.
type SubmitInput struct {
	StudentID   string
	Attachments []string
}

// GradeInput carries the grade and remarks applied by a teacher.
type GradeInput struct {
	Grade   float64
	Remarks string
}

// AssignmentView is the flat response projection: each entity reference
// becomes an id/name pair, both null when the reference is unset.
type AssignmentView struct {
	ID          string    `json:"id"`
	Name        string    `json:"nom"`
	DueDate     time.Time `json:"dateDeRendu"`
	Submitted   bool      `json:"rendu"`
	AuthorID    *string   `json:"auteurId"`
	AuthorName  *string   `json:"auteurName"`
	SubjectID   *string   `json:"matiereId"`
	SubjectName *string   `json:"matiereName"`
	ClassID     *string   `json:"classId"`
	ClassName   *string   `json:"className"`
	Grade       *float64  `json:"note"`
	Remarks     string    `json:"remarques,omitempty"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AssignmentService defines the assignment lifecycle use cases.
type AssignmentService interface {
	Create(ctx context.Context, in AssignmentCreateInput) (*AssignmentView, error)
	GetByID(ctx context.Context, id string) (*AssignmentView, error)
	Update(ctx context.Context, id string, in AssignmentUpdateInput) (*AssignmentView, error)
	Delete(ctx context.Context, id string) error
	Submit(ctx context.Context, id string, in SubmitInput) (*AssignmentView, error)
	Grade(ctx context.Context, id string, in GradeInput) (*AssignmentView, error)

	List(ctx context.Context, page PageRequest) (*Page[AssignmentView], error)
	ListSubmitted(ctx context.Context, page PageRequest) (*Page[AssignmentView], error)
	ListPending(ctx context.Context, page PageRequest) (*Page[AssignmentView], error)
	ListBySubject(ctx context.Context, subjectID string, page PageRequest) (*Page[AssignmentView], error)
	ListByStudent(ctx context.Context, studentID string, page PageRequest) (*Page[AssignmentView], error)
	ListByTeacher(ctx context.Context, teacherID string, page PageRequest) (*Page[AssignmentView], error)
	ListByClass(ctx context.Context, classID string, page PageRequest) (*Page[AssignmentView], error)
}
