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

// ErrDuplicateCheckIn is returned when the (userId, day) uniqueness
// constraint rejects a second record for the same calendar day. The
// constraint lives in MongoDB, so concurrent submissions cannot both win.
var ErrDuplicateCheckIn = errors.New("already checked in today")

type CheckInRepo interface {
	Insert(ctx context.Context, checkIn *model.CheckIn) error
	FindByUserAndDay(ctx context.Context, userID, day string) (*model.CheckIn, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.CheckIn, error)
	QueryWindow(ctx context.Context, start, end time.Time) ([]*model.CheckIn, error)
	EnsureIndexes(ctx context.Context) error
}

type checkInRepo struct {
	collection *mongo.Collection
}

func NewCheckInRepo(db *mongo.Database) CheckInRepo {
	return &checkInRepo{collection: db.Collection("checkins")}
}

func (r *checkInRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// One quick check-in per user per calendar day.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	})
	return err
}

func (r *checkInRepo) Insert(ctx context.Context, checkIn *model.CheckIn) error {
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now()
	}
	if checkIn.ID == "" {
		checkIn.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, checkIn)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCheckIn
	}
	return err
}

func (r *checkInRepo) FindByUserAndDay(ctx context.Context, userID, day string) (*model.CheckIn, error) {
	var checkIn model.CheckIn
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "day": day}).Decode(&checkIn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &checkIn, nil
}

func (r *checkInRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.CheckIn, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkIns []*model.CheckIn
	if err = cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepo) QueryWindow(ctx context.Context, start, end time.Time) ([]*model.CheckIn, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lt": end}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkIns []*model.CheckIn
	if err = cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	return checkIns, nil
}
