package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esatic/assignment-app/internal/core/domain"
)

const collectionSubjects = "subjects"

type SubjectRepository struct {
	col *mongo.Collection
}

func NewSubjectRepository(db *mongo.Database) *SubjectRepository {
	return &SubjectRepository{col: db.Collection(collectionSubjects)}
}

type subjectDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	ImageURL    string             `bson:"imageUrl,omitempty"`
	Color       string             `bson:"color,omitempty"`
	Description string             `bson:"description,omitempty"`
	TeacherID   string             `bson:"teacherId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func toSubjectDoc(s *domain.Subject) (subjectDoc, error) {
	doc := subjectDoc{
		Name:        s.Name,
		ImageURL:    s.ImageURL,
		Color:       s.Color,
		Description: s.Description,
		TeacherID:   s.TeacherID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.ID != "" {
		oid, err := primitive.ObjectIDFromHex(s.ID)
		if err != nil {
			return subjectDoc{}, fmt.Errorf("invalid subject id %q: %w", s.ID, err)
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d subjectDoc) toDomain() *domain.Subject {
	return &domain.Subject{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		ImageURL:    d.ImageURL,
		Color:       d.Color,
		Description: d.Description,
		TeacherID:   d.TeacherID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *SubjectRepository) FindByID(ctx context.Context, id string) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.NewNotFound("Subject", id)
	}

	var doc subjectDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("Subject", id)
		}
		return nil, fmt.Errorf("find subject: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SubjectRepository) FindAll(ctx context.Context) ([]*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find subjects: %w", err)
	}
	return decodeSubjects(ctx, cur)
}

// FindByIDs resolves a batch of ids in one query. Hex-invalid ids are simply
// absent from the result, matching the tolerant lookup semantics elsewhere.
func (r *SubjectRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find subjects by ids: %w", err)
	}
	return decodeSubjects(ctx, cur)
}

func (r *SubjectRepository) Save(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toSubjectDoc(s)
	if err != nil {
		return nil, err
	}

	if s.ID == "" {
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert subject: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc.toDomain(), nil
	}

	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc); err != nil {
		return nil, fmt.Errorf("replace subject: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SubjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.NewNotFound("Subject", id)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("Subject", id)
	}
	return nil
}

func decodeSubjects(ctx context.Context, cur *mongo.Cursor) ([]*domain.Subject, error) {
	defer cur.Close(ctx)

	var out []*domain.Subject
	for cur.Next(ctx) {
		var doc subjectDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode subject: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate subjects: %w", err)
	}
	return out, nil
}
