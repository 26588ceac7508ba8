package repository

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/models"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

func (d userDocument) toModel() models.User {
	return models.User{ID: d.ID.Hex(), Username: d.Username}
}

// exerciseDocument keeps userId as a plain string, so exercises stay
// queryable after their user is gone.
type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	Username    string             `bson:"username"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        string             `bson:"date"`
}

func (d exerciseDocument) toModel() models.Exercise {
	return models.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Username:    d.Username,
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date,
	}
}

// EnsureMongoIndexes creates the index backing log queries.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(exercisesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create exercises index: %w", err)
	}
	return nil
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a new MongoDB-based UserRepository.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(usersCollection)}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	ctx, span := tracer.Start(ctx, "MongoUserRepository.CreateUser")
	defer span.End()

	doc := userDocument{ID: primitive.NewObjectID(), Username: user.Username}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fail(span, fmt.Errorf("failed to create user: %w", err))
	}
	user.ID = doc.ID.Hex()
	return nil
}

// GetUserByID treats an id that is not a valid ObjectID as unknown.
func (r *mongoUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "MongoUserRepository.GetUserByID")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc userDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fail(span, fmt.Errorf("failed to get user by id: %w", err))
	}
	user := doc.toModel()
	return &user, nil
}

func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, span := tracer.Start(ctx, "MongoUserRepository.ListUsers")
	defer span.End()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to list users: %w", err))
	}
	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fail(span, fmt.Errorf("failed to decode users: %w", err))
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}
	return users, nil
}

func (r *mongoUserRepository) DeleteAllUsers(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "MongoUserRepository.DeleteAllUsers")
	defer span.End()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to delete users: %w", err))
	}
	return res.DeletedCount, nil
}

type mongoExerciseRepository struct {
	coll *mongo.Collection
}

// NewMongoExerciseRepository creates a new MongoDB-based ExerciseRepository.
func NewMongoExerciseRepository(db *mongo.Database) ExerciseRepository {
	return &mongoExerciseRepository{coll: db.Collection(exercisesCollection)}
}

func (r *mongoExerciseRepository) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	ctx, span := tracer.Start(ctx, "MongoExerciseRepository.CreateExercise")
	defer span.End()

	doc := exerciseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      exercise.UserID,
		Username:    exercise.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fail(span, fmt.Errorf("failed to create exercise: %w", err))
	}
	exercise.ID = doc.ID.Hex()
	return nil
}

func (r *mongoExerciseRepository) FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error) {
	ctx, span := tracer.Start(ctx, "MongoExerciseRepository.FindExercises")
	defer span.End()

	query := bson.M{
		"userId": filter.UserID,
		"date":   bson.M{"$gte": filter.From, "$lte": filter.To},
	}
	cursor, err := r.coll.Find(ctx, query, options.Find().SetLimit(int64(filter.Limit)))
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to find exercises: %w", err))
	}
	var docs []exerciseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fail(span, fmt.Errorf("failed to decode exercises: %w", err))
	}

	exercises := make([]models.Exercise, 0, len(docs))
	for _, doc := range docs {
		exercises = append(exercises, doc.toModel())
	}
	return exercises, nil
}

func (r *mongoExerciseRepository) DeleteAllExercises(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "MongoExerciseRepository.DeleteAllExercises")
	defer span.End()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to delete exercises: %w", err))
	}
	return res.DeletedCount, nil
}
