package shifts

import (
	"context"
	"errors"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrShiftOpen   = errors.New("shift already open")
	ErrNoOpenShift = errors.New("no open shift")
)

// Store is the persistence seam for clock-in/clock-out. Start must fail with
// ErrShiftOpen when the user already has an open shift, atomically with the
// insert; two concurrent starts for the same user must not both succeed.
type Store interface {
	Start(ctx context.Context, s models.Shift) error
	FindOpen(ctx context.Context, userID string) (models.Shift, error)
	Close(ctx context.Context, shiftID string, out time.Time, hours float64) error
}

var store Store = mongoStore{}

// mongoStore enforces the single-open-shift invariant through the partial
// unique index on {userId, open: true}; the losing insert of a race gets a
// duplicate key error instead of a second open shift.
type mongoStore struct{}

func (mongoStore) Start(ctx context.Context, s models.Shift) error {
	_, err := db.ShiftsCollection.InsertOne(ctx, s)
	if mongo.IsDuplicateKeyError(err) {
		return ErrShiftOpen
	}
	return err
}

func (mongoStore) FindOpen(ctx context.Context, userID string) (models.Shift, error) {
	var s models.Shift
	err := db.ShiftsCollection.FindOne(ctx, bson.M{"userId": userID, "open": true}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return s, ErrNoOpenShift
	}
	return s, err
}

func (mongoStore) Close(ctx context.Context, shiftID string, out time.Time, hours float64) error {
	res, err := db.ShiftsCollection.UpdateOne(ctx,
		bson.M{"shiftId": shiftID, "open": true},
		bson.M{"$set": bson.M{"clockOut": out, "durationHours": hours, "open": false}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoOpenShift
	}
	return nil
}
