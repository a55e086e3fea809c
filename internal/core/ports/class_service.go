package ports

import (
	"context"
	"time"
)

// ClassInput carries the writable class fields.
type ClassInput struct {
	Name        string
	Year        string
	Description string
}

// StudentInfo is the roster entry embedded in class responses.
type StudentInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ClassView is the class response projection. Students is derived by query
// at projection time, never stored on the class document.
type ClassView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Year        string        `json:"year"`
	Description string        `json:"description,omitempty"`
	Students    []StudentInfo `json:"students"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ClassService defines class CRUD and roster management.
type ClassService interface {
	List(ctx context.Context) ([]*ClassView, error)
	GetByID(ctx context.Context, id string) (*ClassView, error)
	Create(ctx context.Context, in ClassInput) (*ClassView, error)
	Update(ctx context.Context, id string, in ClassInput) (*ClassView, error)
	// Delete clears the class reference on every student still pointing at
	// this class before removing the record.
	Delete(ctx context.Context, id string) error
	AddStudent(ctx context.Context, classID, studentID string) (*ClassView, error)
	RemoveStudent(ctx context.Context, classID, studentID string) (*ClassView, error)
}
