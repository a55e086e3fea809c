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
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Username         string             `bson:"username"`
	Email            string             `bson:"email"`
	Password         string             `bson:"password"`
	Role             string             `bson:"role"`
	FirstName        string             `bson:"firstName"`
	LastName         string             `bson:"lastName"`
	PhotoURL         string             `bson:"photoUrl,omitempty"`
	Enabled          bool               `bson:"enabled"`
	ClassID          string             `bson:"classId,omitempty"`
	TeachingSubjects []string           `bson:"teachingSubjects,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func toUserDoc(u *domain.User) (userDoc, error) {
	doc := userDoc{
		Username:         u.Username,
		Email:            u.Email,
		Password:         u.PasswordHash,
		Role:             string(u.Role),
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		PhotoURL:         u.PhotoURL,
		Enabled:          u.Enabled,
		ClassID:          u.ClassID,
		TeachingSubjects: u.TeachingSubjectIDs,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
	if u.ID != "" {
		oid, err := primitive.ObjectIDFromHex(u.ID)
		if err != nil {
			return userDoc{}, fmt.Errorf("invalid user id %q: %w", u.ID, err)
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:                 d.ID.Hex(),
		Username:           d.Username,
		Email:              d.Email,
		PasswordHash:       d.Password,
		Role:               domain.Role(d.Role),
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		PhotoURL:           d.PhotoURL,
		Enabled:            d.Enabled,
		ClassID:            d.ClassID,
		TeachingSubjectIDs: d.TeachingSubjects,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id is a benign absence, not a server error.
		return nil, domain.NewNotFound("User", id)
	}

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("User", id)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return decodeUsers(ctx, cur)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("User", username)
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByClassID(ctx context.Context, classID string) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"classId": classID})
	if err != nil {
		return nil, fmt.Errorf("find users by class: %w", err)
	}
	return decodeUsers(ctx, cur)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, bson.M{"username": username})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

func (r *UserRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toUserDoc(u)
	if err != nil {
		return nil, err
	}

	if u.ID == "" {
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert user: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc.toDomain(), nil
	}

	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc); err != nil {
		return nil, fmt.Errorf("replace user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.NewNotFound("User", id)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("User", id)
	}
	return nil
}

// RemoveTeachingSubject pulls subjectID out of every teaching-subjects list.
func (r *UserRepository) RemoveTeachingSubject(ctx context.Context, subjectID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"teachingSubjects": subjectID},
		bson.M{"$pull": bson.M{"teachingSubjects": subjectID}},
	)
	if err != nil {
		return fmt.Errorf("remove teaching subject: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique account indexes.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "classId", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeUsers(ctx context.Context, cur *mongo.Cursor) ([]*domain.User, error) {
	defer cur.Close(ctx)

	var out []*domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}
