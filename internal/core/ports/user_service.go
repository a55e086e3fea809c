package ports

import (
	"context"
	"time"
)

// ClassInfo is the compact class shape embedded in user responses.
type ClassInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year string `json:"year,omitempty"`
}

// UserView is the user response projection. ClassInfo is only populated for
// students, TeachingSubjects only for teachers.
type UserView struct {
	ID               string        `json:"id"`
	Username         string        `json:"username"`
	Email            string        `json:"email"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	Role             string        `json:"role"`
	PhotoURL         string        `json:"photoUrl,omitempty"`
	Enabled          bool          `json:"enabled"`
	ClassInfo        *ClassInfo    `json:"classInfo,omitempty"`
	TeachingSubjects []SubjectInfo `json:"teachingSubjects,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// ProfilePatch is a partial profile update: nil fields are left untouched.
// ClassID is only applied to students and TeachingSubjectIDs only to
// teachers; both are resolved strictly and fail when a referent is missing.
type ProfilePatch struct {
	FirstName          *string
	LastName           *string
	Email              *string
	PhotoURL           *string
	ClassID            *string
	TeachingSubjectIDs []string
}

// UserService defines user management use cases.
type UserService interface {
	List(ctx context.Context) ([]*UserView, error)
	GetByID(ctx context.Context, id string) (*UserView, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*UserView, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	Delete(ctx context.Context, id string) error
}
