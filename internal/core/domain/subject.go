package domain

import "time"

// Subject is a taught discipline. TeacherID references a User with role
// TEACHER; it is the inverse of one edge of that user's TeachingSubjectIDs
// and the two views are not automatically kept in sync.
type Subject struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Color       string    `json:"color,omitempty" bson:"color,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	TeacherID   string    `json:"teacherId,omitempty" bson:"teacherId,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
