package domain

import "time"

// Role drives which relation fields on User carry meaning.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// User models an account in the system. ClassID is only meaningful when the
// role is STUDENT; TeachingSubjectIDs only when the role is TEACHER. The role
// gating is enforced by the services, not by the storage layer.
type User struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Username           string    `json:"username" bson:"username"`
	Email              string    `json:"email" bson:"email"`
	PasswordHash       string    `json:"-" bson:"password"`
	Role               Role      `json:"role" bson:"role"`
	FirstName          string    `json:"firstName" bson:"firstName"`
	LastName           string    `json:"lastName" bson:"lastName"`
	PhotoURL           string    `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Enabled            bool      `json:"enabled" bson:"enabled"`
	ClassID            string    `json:"classId,omitempty" bson:"classId,omitempty"`
	TeachingSubjectIDs []string  `json:"teachingSubjects,omitempty" bson:"teachingSubjects,omitempty"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FullName is the display name used in projections.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
