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

const collectionClasses = "classes"

type ClassRepository struct {
	col *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{col: db.Collection(collectionClasses)}
}

type classDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Year        string             `bson:"year"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func toClassDoc(c *domain.Class) (classDoc, error) {
	doc := classDoc{
		Name:        c.Name,
		Year:        c.Year,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.ID != "" {
		oid, err := primitive.ObjectIDFromHex(c.ID)
		if err != nil {
			return classDoc{}, fmt.Errorf("invalid class id %q: %w", c.ID, err)
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d classDoc) toDomain() *domain.Class {
	return &domain.Class{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Year:        d.Year,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *ClassRepository) FindByID(ctx context.Context, id string) (*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.NewNotFound("Class", id)
	}

	var doc classDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("Class", id)
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ClassRepository) FindAll(ctx context.Context) ([]*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Class
	for cur.Next(ctx) {
		var doc classDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode class: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate classes: %w", err)
	}
	return out, nil
}

func (r *ClassRepository) Save(ctx context.Context, c *domain.Class) (*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toClassDoc(c)
	if err != nil {
		return nil, err
	}

	if c.ID == "" {
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert class: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc.toDomain(), nil
	}

	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc); err != nil {
		return nil, fmt.Errorf("replace class: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.NewNotFound("Class", id)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("Class", id)
	}
	return nil
}
