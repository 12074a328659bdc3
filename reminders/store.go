package reminders

import (
	"context"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/appointments"
	"github.com/Roei786/Bridal-salon-sub000/dates"
	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBrideStore backs BrideStore with the brides collection.
type MongoBrideStore struct{}

func (MongoBrideStore) Get(ctx context.Context, brideID string) (models.Bride, error) {
	var b models.Bride
	err := db.BridesCollection.FindOne(ctx, bson.M{"brideId": brideID}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return b, ErrNotFound
	}
	return b, err
}

// ClaimReminder stamps lastReminderSent through a conditional update so that
// two overlapping sweeps cannot both win the same calendar day.
func (MongoBrideStore) ClaimReminder(ctx context.Context, brideID string, now time.Time) (bool, *time.Time, error) {
	var b models.Bride
	err := db.BridesCollection.FindOne(ctx, bson.M{"brideId": brideID}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return false, nil, ErrNotFound
	}
	if err != nil {
		return false, nil, err
	}

	res, err := db.BridesCollection.UpdateOne(ctx,
		bson.M{
			"brideId": brideID,
			"$or": bson.A{
				bson.M{"lastReminderSent": bson.M{"$exists": false}},
				bson.M{"lastReminderSent": nil},
				bson.M{"lastReminderSent": bson.M{"$lt": dates.StartOfDay(now)}},
			},
		},
		bson.M{"$set": bson.M{"lastReminderSent": now}},
	)
	if err != nil {
		return false, nil, err
	}
	return res.ModifiedCount == 1, b.LastReminderSent, nil
}

func (MongoBrideStore) ReleaseReminder(ctx context.Context, brideID string, prev *time.Time) error {
	update := bson.M{"$set": bson.M{"lastReminderSent": prev}}
	if prev == nil {
		update = bson.M{"$unset": bson.M{"lastReminderSent": ""}}
	}
	_, err := db.BridesCollection.UpdateOne(ctx, bson.M{"brideId": brideID}, update)
	return err
}

// MongoAppointmentSource reads appointments through the appointment store.
type MongoAppointmentSource struct{}

func (MongoAppointmentSource) List(ctx context.Context) ([]models.Appointment, error) {
	return appointments.List(ctx)
}

func (MongoAppointmentSource) ListByBride(ctx context.Context, brideID string) ([]models.Appointment, error) {
	return appointments.ListByBride(ctx, brideID)
}
