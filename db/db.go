package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection         *mongo.Collection
	BridesCollection       *mongo.Collection
	AppointmentsCollection *mongo.Collection
	ShiftsCollection       *mongo.Collection
	SettingsCollection     *mongo.Collection
	HistoryCollection      *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ClientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("salondb").Collection("users")
	BridesCollection = Client.Database("salondb").Collection("brides")
	AppointmentsCollection = Client.Database("salondb").Collection("appointments")
	ShiftsCollection = Client.Database("salondb").Collection("shifts")
	SettingsCollection = Client.Database("salondb").Collection("settings")
	HistoryCollection = Client.Database("salondb").Collection("history")

	// At most one open shift per user; concurrent clock-ins race on this
	// index instead of on an application-level read.
	_, err = ShiftsCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"open": true}),
	})
	if err != nil {
		log.Printf("Failed to ensure open-shift index: %v", err)
	}
}
