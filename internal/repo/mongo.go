package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Alijeyrad/enquiry_backend/pkg/constants"
)

// documentValidationFailure is the server code for a $jsonSchema rejection.
const documentValidationFailure = 121

type enquiryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Lastname  string             `bson:"lastname"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Notes     string             `bson:"notes"`
	CreatedAt time.Time          `bson:"created_at"`
}

// MongoStore keeps enquiries in a MongoDB collection.
type MongoStore struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db, coll: db.Collection(constants.EnquiryCollection)}
}

func (s *MongoStore) Create(ctx context.Context, e *Enquiry) error {
	if err := validateSchema(e); err != nil {
		return err
	}

	doc := enquiryDocument{
		ID:        primitive.NewObjectID(),
		Name:      e.Name,
		Lastname:  e.Lastname,
		Email:     e.Email,
		Subject:   e.Subject,
		Notes:     e.Notes,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return classifyMongoError(err)
	}

	e.ID = doc.ID.Hex()
	e.CreatedAt = doc.CreatedAt
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes the enquiry collection is queried by.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email"),
		},
	})
	if err != nil {
		return fmt.Errorf("create enquiry indexes: %w", err)
	}
	return nil
}

func classifyMongoError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}

	var we mongo.WriteException
	if errors.As(err, &we) {
		var fields []FieldError
		for _, w := range we.WriteErrors {
			if w.Code == documentValidationFailure {
				fields = append(fields, FieldError{Message: w.Message})
			}
		}
		if len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
	}

	return fmt.Errorf("insert enquiry: %w", err)
}
