package ports

import (
	"context"
	"time"
)

// SubjectInput carries the writable subject fields. TeacherID follows the
// reference-patch convention: nil keeps the current teacher on update (and
// leaves it unset on create), an empty string clears it, an unresolvable id
// keeps the current value.
type SubjectInput struct {
	Name        string
	ImageURL    string
	Color       string
	Description string
	TeacherID   *string
}

// SubjectInfo is the compact subject shape embedded in other responses.
type SubjectInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
	Color    string `json:"color,omitempty"`
}

// SubjectView is the subject response projection.
type SubjectView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	TeacherID   *string   `json:"teacherId"`
	TeacherName *string   `json:"teacherName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SubjectService defines subject CRUD.
type SubjectService interface {
	List(ctx context.Context) ([]*SubjectView, error)
	GetByID(ctx context.Context, id string) (*SubjectView, error)
	Create(ctx context.Context, in SubjectInput) (*SubjectView, error)
	Update(ctx context.Context, id string, in SubjectInput) (*SubjectView, error)
	Delete(ctx context.Context, id string) error
}
