package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"crewpulse/internal/model"
)

// ErrAlreadyCompleted is returned by Complete when the assessment was
// already finalized; completion happens exactly once.
var ErrAlreadyCompleted = errors.New("wellness check already completed today")

type WellnessRepo interface {
	Create(ctx context.Context, check *model.WellnessCheck) error
	GetByID(ctx context.Context, id string) (*model.WellnessCheck, error)
	FindByUserAndDay(ctx context.Context, userID, day string) (*model.WellnessCheck, error)
	RecentCompleted(ctx context.Context, userID string, limit int) ([]*model.WellnessCheck, error)
	CompletedWindow(ctx context.Context, userID string, start, end time.Time, limit int) ([]*model.WellnessCheck, error)
	QueryCompletedWindow(ctx context.Context, start, end time.Time) ([]*model.WellnessCheck, error)
	Complete(ctx context.Context, check *model.WellnessCheck) error
	EnsureIndexes(ctx context.Context) error
}

type wellnessRepo struct {
	collection *mongo.Collection
}

func NewWellnessRepo(db *mongo.Database) WellnessRepo {
	return &wellnessRepo{collection: db.Collection("wellness_checks")}
}

func (r *wellnessRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// One assessment per user per calendar day, issued or completed.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	})
	return err
}

func (r *wellnessRepo) Create(ctx context.Context, check *model.WellnessCheck) error {
	if check.CreatedAt.IsZero() {
		check.CreatedAt = time.Now()
	}
	if check.ID == "" {
		check.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, check)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCheckIn
	}
	return err
}

func (r *wellnessRepo) GetByID(ctx context.Context, id string) (*model.WellnessCheck, error) {
	var check model.WellnessCheck
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&check)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &check, nil
}

func (r *wellnessRepo) FindByUserAndDay(ctx context.Context, userID, day string) (*model.WellnessCheck, error) {
	var check model.WellnessCheck
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "day": day}).Decode(&check)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &check, nil
}

func (r *wellnessRepo) RecentCompleted(ctx context.Context, userID string, limit int) ([]*model.WellnessCheck, error) {
	filter := bson.M{"userId": userID, "completedAt": bson.M{"$exists": true}}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []*model.WellnessCheck
	if err = cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *wellnessRepo) CompletedWindow(ctx context.Context, userID string, start, end time.Time, limit int) ([]*model.WellnessCheck, error) {
	filter := bson.M{
		"userId":      userID,
		"completedAt": bson.M{"$exists": true},
		"date":        bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []*model.WellnessCheck
	if err = cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *wellnessRepo) QueryCompletedWindow(ctx context.Context, start, end time.Time) ([]*model.WellnessCheck, error) {
	filter := bson.M{
		"completedAt": bson.M{"$exists": true},
		"date":        bson.M{"$gte": start, "$lte": end},
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []*model.WellnessCheck
	if err = cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}

// Complete finalizes an issued assessment. The completedAt guard in the
// filter makes scoring-and-persisting a single atomic step: losers of a
// concurrent submit race match zero documents.
func (r *wellnessRepo) Complete(ctx context.Context, check *model.WellnessCheck) error {
	filter := bson.M{"_id": check.ID, "completedAt": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{
		"responses":        check.Responses,
		"overallScore":     check.OverallScore,
		"completedAt":      check.CompletedAt,
		"mood":             check.Mood,
		"stressLevel":      check.StressLevel,
		"energyLevel":      check.EnergyLevel,
		"workSatisfaction": check.WorkSatisfaction,
		"insights":         check.Insights,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAlreadyCompleted
	}
	return nil
}
