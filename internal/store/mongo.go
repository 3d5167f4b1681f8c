package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ayush/exercise-tracker/internal/models"
)

// MongoStore handles user and exercise CRUD in MongoDB.
type MongoStore struct {
	users     *mongo.Collection
	exercises *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users:     db.Collection("users"),
		exercises: db.Collection("exercises"),
	}
}

func (s *MongoStore) InsertUser(ctx context.Context, username string) (*models.User, error) {
	res, err := s.users.InsertOne(ctx, bson.M{"username": username})
	if err != nil {
		return nil, fmt.Errorf("mongo insert user: %w", err)
	}
	return &models.User{
		ID:       res.InsertedID.(primitive.ObjectID),
		Username: username,
	}, nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cur, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) InsertExercise(ctx context.Context, ex *models.Exercise) error {
	res, err := s.exercises.InsertOne(ctx, ex)
	if err != nil {
		return fmt.Errorf("mongo insert exercise: %w", err)
	}
	ex.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStore) ListExercises(ctx context.Context, userID primitive.ObjectID, f models.LogFilter) ([]models.Exercise, error) {
	filter := bson.M{"userId": userID}
	if f.From != nil || f.To != nil {
		date := bson.M{}
		if f.From != nil {
			date["$gte"] = *f.From
		}
		if f.To != nil {
			date["$lte"] = *f.To
		}
		filter["date"] = date
	}

	opts := options.Find()
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := s.exercises.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var exercises []models.Exercise
	if err := cur.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
