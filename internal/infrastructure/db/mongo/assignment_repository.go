package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

const collectionAssignments = "assignments"

type AssignmentRepository struct {
	col *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{col: db.Collection(collectionAssignments)}
}

// assignmentDoc keeps the historical French field names on the wire.
type assignmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"nom"`
	DueDate     time.Time          `bson:"dateDeRendu"`
	Submitted   bool               `bson:"rendu"`
	AuthorID    string             `bson:"auteur,omitempty"`
	SubjectID   string             `bson:"matiere,omitempty"`
	ClassID     string             `bson:"classId,omitempty"`
	Grade       *float64           `bson:"note,omitempty"`
	Remarks     string             `bson:"remarques,omitempty"`
	Attachments []string           `bson:"attachments,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func toAssignmentDoc(a *domain.Assignment) (assignmentDoc, error) {
	doc := assignmentDoc{
		Name:        a.Name,
		DueDate:     a.DueDate,
		Submitted:   a.Submitted,
		AuthorID:    a.AuthorID,
		SubjectID:   a.SubjectID,
		ClassID:     a.ClassID,
		Grade:       a.Grade,
		Remarks:     a.Remarks,
		Attachments: a.Attachments,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.ID != "" {
		oid, err := primitive.ObjectIDFromHex(a.ID)
		if err != nil {
			return assignmentDoc{}, fmt.Errorf("invalid assignment id %q: %w", a.ID, err)
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d assignmentDoc) toDomain() *domain.Assignment {
	return &domain.Assignment{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		DueDate:     d.DueDate,
		Submitted:   d.Submitted,
		AuthorID:    d.AuthorID,
		SubjectID:   d.SubjectID,
		ClassID:     d.ClassID,
		Grade:       d.Grade,
		Remarks:     d.Remarks,
		Attachments: d.Attachments,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.NewNotFound("Assignment", id)
	}

	var doc assignmentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("Assignment", id)
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AssignmentRepository) Save(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toAssignmentDoc(a)
	if err != nil {
		return nil, err
	}

	if a.ID == "" {
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert assignment: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc.toDomain(), nil
	}

	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc); err != nil {
		return nil, fmt.Errorf("replace assignment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.NewNotFound("Assignment", id)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("Assignment", id)
	}
	return nil
}

// Find runs a filtered, sorted, paginated listing and counts the full match
// set in the same call so callers can build a pagination envelope.
func (r *AssignmentRepository) Find(ctx context.Context, filter ports.AssignmentFilter, sort ports.SortOrder, page ports.PageRequest) ([]*domain.Assignment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	page = page.Normalize()
	query := buildFilter(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count assignments: %w", err)
	}

	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	switch sort {
	case ports.SortDueDateDesc:
		opts.SetSort(bson.D{{Key: "dateDeRendu", Value: -1}})
	case ports.SortDueDateAsc:
		opts.SetSort(bson.D{{Key: "dateDeRendu", Value: 1}})
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find assignments: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Assignment
	for cur.Next(ctx) {
		var doc assignmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode assignment: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate assignments: %w", err)
	}
	return out, total, nil
}

func buildFilter(f ports.AssignmentFilter) bson.M {
	query := bson.M{}
	if f.Submitted != nil {
		query["rendu"] = *f.Submitted
	}
	if f.SubjectID != "" {
		query["matiere"] = f.SubjectID
	}
	if f.SubjectIDIn != nil {
		// An empty $in set matches no documents, which is exactly the
		// contract for a teacher with no subjects.
		query["matiere"] = bson.M{"$in": f.SubjectIDIn}
	}
	if f.AuthorID != "" {
		query["auteur"] = f.AuthorID
	}
	if f.ClassID != "" {
		query["classId"] = f.ClassID
	}
	return query
}

func (r *AssignmentRepository) ClearSubjectRefs(ctx context.Context, subjectID string) error {
	return r.clearRefs(ctx, "matiere", subjectID)
}

func (r *AssignmentRepository) ClearClassRefs(ctx context.Context, classID string) error {
	return r.clearRefs(ctx, "classId", classID)
}

func (r *AssignmentRepository) clearRefs(ctx context.Context, field, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{field: id},
		bson.M{"$unset": bson.M{field: ""}},
	)
	if err != nil {
		return fmt.Errorf("clear %s refs: %w", field, err)
	}
	return nil
}

// EnsureIndexes creates the listing indexes.
func (r *AssignmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "rendu", Value: 1}, {Key: "dateDeRendu", Value: -1}}},
		{Keys: bson.D{{Key: "matiere", Value: 1}}},
		{Keys: bson.D{{Key: "auteur", Value: 1}}},
		{Keys: bson.D{{Key: "classId", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
