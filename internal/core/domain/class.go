package domain

import "time"

// Class represents a school class (a cohort of students). The roster is not
// stored here: membership lives on each student's ClassID and the class view
// derives its student list by query, so the relation has a single source of
// truth.
type Class struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Year        string    `json:"year" bson:"year"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
