package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/dates"
	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/models"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func genID() string {
	return utils.GenerateRandomDigitString(22)
}

var dateAsc = options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]models.Appointment, error) {
	defer cur.Close(ctx)
	var appts []models.Appointment
	for cur.Next(ctx) {
		var a models.Appointment
		if err := cur.Decode(&a); err != nil {
			continue
		}
		appts = append(appts, a)
	}
	return appts, cur.Err()
}

// List returns all appointments ordered by date ascending.
func List(ctx context.Context) ([]models.Appointment, error) {
	cur, err := db.AppointmentsCollection.Find(ctx, bson.M{}, dateAsc)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// ListByDateRange returns appointments whose stored date string falls within
// [start, end]. The stored layout sorts lexicographically in date order.
func ListByDateRange(ctx context.Context, start, end string) ([]models.Appointment, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	cur, err := db.AppointmentsCollection.Find(ctx, filter, dateAsc)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// ListByBride returns one bride's appointments ordered by date.
func ListByBride(ctx context.Context, brideID string) ([]models.Appointment, error) {
	cur, err := db.AppointmentsCollection.Find(ctx, bson.M{"brideId": brideID}, dateAsc)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// Get returns a single appointment; mongo.ErrNoDocuments when missing.
func Get(ctx context.Context, id string) (models.Appointment, error) {
	var a models.Appointment
	err := db.AppointmentsCollection.FindOne(ctx, bson.M{"appointmentId": id}).Decode(&a)
	return a, err
}

// Create assigns an ID, serializes the date, and persists the appointment.
func Create(ctx context.Context, a *models.Appointment) error {
	if a.BrideID == "" {
		return fmt.Errorf("missing bride reference")
	}
	normalized, err := NormalizeDateField(a.Date)
	if err != nil {
		return err
	}
	a.Date = normalized
	a.AppointmentID = genID()
	if a.Status == "" {
		a.Status = models.ApptPlanned
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()

	_, err = db.AppointmentsCollection.InsertOne(ctx, a)
	return err
}

// Update merges the given fields into the stored appointment. A "date" field
// is re-serialized to the stored string format first.
func Update(ctx context.Context, id string, fields bson.M) error {
	if raw, ok := fields["date"]; ok {
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("date must be a string")
		}
		normalized, err := NormalizeDateField(s)
		if err != nil {
			return err
		}
		fields["date"] = normalized
	}
	fields["updatedAt"] = time.Now()

	res, err := db.AppointmentsCollection.UpdateOne(ctx, bson.M{"appointmentId": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an appointment by ID.
func Delete(ctx context.Context, id string) error {
	res, err := db.AppointmentsCollection.DeleteOne(ctx, bson.M{"appointmentId": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// NormalizeDateField parses an incoming date value and re-serializes it into
// the canonical stored string form.
func NormalizeDateField(s string) (string, error) {
	t, err := dates.ParseStored(s)
	if err != nil {
		return "", err
	}
	return dates.FormatStored(t), nil
}
