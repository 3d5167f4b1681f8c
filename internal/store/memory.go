package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayush/exercise-tracker/internal/models"
)

// MemoryStore keeps users and exercises in process memory. It backs local
// development when no MONGO_URI is configured, and the handler tests.
// Slices preserve insertion order, mirroring Mongo's natural order on
// unindexed finds.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []models.User
	exercises []models.Exercise
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) InsertUser(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{ID: primitive.NewObjectID(), Username: username}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == oid {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) InsertExercise(ctx context.Context, ex *models.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex.ID = primitive.NewObjectID()
	s.exercises = append(s.exercises, *ex)
	return nil
}

func (s *MemoryStore) ListExercises(ctx context.Context, userID primitive.ObjectID, f models.LogFilter) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Exercise
	for _, ex := range s.exercises {
		if ex.UserID != userID {
			continue
		}
		if f.From != nil && ex.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && ex.Date.After(*f.To) {
			continue
		}
		out = append(out, ex)
		if f.Limit > 0 && int64(len(out)) == f.Limit {
			break
		}
	}
	return out, nil
}
