package domain

import "time"

// Assignment is the core aggregate: a gradable task tied to a subject, a
// class and an authoring student. All three references are optional — an
// assignment record is kept even when a reference cannot be resolved.
// Grade and Remarks only carry meaning once the assignment is submitted,
// although grading an unsubmitted assignment is accepted.
//
// The bson field names (nom, dateDeRendu, rendu, auteur, matiere, note,
// remarques) match the historical collection layout.
type Assignment struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"nom" bson:"nom"`
	DueDate     time.Time `json:"dateDeRendu" bson:"dateDeRendu"`
	Submitted   bool      `json:"rendu" bson:"rendu"`
	AuthorID    string    `json:"auteurId,omitempty" bson:"auteur,omitempty"`
	SubjectID   string    `json:"matiereId,omitempty" bson:"matiere,omitempty"`
	ClassID     string    `json:"classId,omitempty" bson:"classId,omitempty"`
	Grade       *float64  `json:"note,omitempty" bson:"note,omitempty"`
	Remarks     string    `json:"remarques,omitempty" bson:"remarques,omitempty"`
	Attachments []string  `json:"attachments,omitempty" bson:"attachments,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
