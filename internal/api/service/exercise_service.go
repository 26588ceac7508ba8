package service

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/models"
	"ctchen222/exercise-tracker/internal/api/repository"
	"ctchen222/exercise-tracker/internal/calendar"
	"ctchen222/exercise-tracker/internal/validator"
	"ctchen222/exercise-tracker/pkg/proto"
	"log/slog"
	"math"
	"strconv"
	"time"
)

// DefaultLogLimit caps a log query when no usable limit is given.
const DefaultLogLimit = 500

// ExerciseService defines the interface for exercise logging and log retrieval.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID string, req *models.ExerciseRequest) (*proto.ExerciseResponse, error)
	GetLog(ctx context.Context, userID string, query *models.LogQuery) (*proto.LogResponse, error)
	DeleteAllExercises(ctx context.Context) (*proto.DeleteResponse, error)
}

type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
}

// NewExerciseService creates a new ExerciseService. now supplies the current
// time for default dates; nil means time.Now.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository, now func() time.Time) ExerciseService {
	if now == nil {
		now = time.Now
	}
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          now,
	}
}

// AddExercise logs an exercise for an existing user. The date defaults to
// today and is stored as YYYY-MM-DD; the response renders it in long form.
func (s *exerciseService) AddExercise(ctx context.Context, userID string, req *models.ExerciseRequest) (*proto.ExerciseResponse, error) {
	if err := validator.GetValidator().Struct(req); err != nil {
		return nil, fromValidator(err)
	}

	duration, err := parseDuration(req.Duration.String())
	if err != nil {
		return nil, err
	}

	date := calendar.Today(s.now())
	if req.Date != "" {
		if date, err = calendar.Normalize(req.Date); err != nil {
			return nil, invalid("date", err.Error())
		}
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	exercise := &models.Exercise{
		UserID:      user.ID,
		Username:    user.Username,
		Description: req.Description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.exerciseRepo.CreateExercise(ctx, exercise); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Exercise logged", "user_id", user.ID, "exercise_id", exercise.ID, "date", date)
	return &proto.ExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        calendar.Long(exercise.Date),
		ID:          user.ID,
	}, nil
}

// GetLog returns the user's exercises dated within [from, to], at most limit
// of them. from defaults to the epoch, to to today, limit to DefaultLogLimit.
func (s *exerciseService) GetLog(ctx context.Context, userID string, query *models.LogQuery) (*proto.LogResponse, error) {
	if err := validator.GetValidator().Struct(query); err != nil {
		return nil, fromValidator(err)
	}

	from, err := dateOrDefault(query.From, calendar.Epoch, "from")
	if err != nil {
		return nil, err
	}
	to, err := dateOrDefault(query.To, calendar.Today(s.now()), "to")
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	exercises, err := s.exerciseRepo.FindExercises(ctx, models.LogFilter{
		UserID: user.ID,
		From:   from,
		To:     to,
		Limit:  parseLimit(query.Limit),
	})
	if err != nil {
		return nil, err
	}

	log := make([]proto.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, proto.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        calendar.Long(e.Date),
		})
	}

	return &proto.LogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}, nil
}

// DeleteAllExercises purges the exercise collection.
func (s *exerciseService) DeleteAllExercises(ctx context.Context) (*proto.DeleteResponse, error) {
	n, err := s.exerciseRepo.DeleteAllExercises(ctx)
	if err != nil {
		return nil, err
	}

	slog.WarnContext(ctx, "All exercises deleted", "count", n)
	return &proto.DeleteResponse{
		Message: "All exercises deleted",
		Result:  proto.DeleteResult{Acknowledged: true, DeletedCount: n},
	}, nil
}

// parseDuration coerces a duration to whole minutes. Fractions are truncated.
func parseDuration(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, invalid("duration", "must be an integer number of minutes")
	}
	return int(f), nil
}

// parseLimit falls back to DefaultLogLimit for absent, non-numeric or
// non-positive limits.
func parseLimit(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return DefaultLogLimit
	}
	return n
}

func dateOrDefault(s, fallback, field string) (string, error) {
	if s == "" {
		return fallback, nil
	}
	date, err := calendar.Normalize(s)
	if err != nil {
		return "", invalid(field, err.Error())
	}
	return date, nil
}
