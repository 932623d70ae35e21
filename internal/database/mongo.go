package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens the shared MongoDB client and verifies the server is
// reachable with a bounded ping. The client is process-wide state: it is
// created once at startup and never explicitly torn down.
//
// A ping failure still returns a usable *mongo.Database alongside the error;
// the caller is expected to log and keep serving, letting individual data
// operations fail until the database becomes reachable. Only an invalid
// connection string yields a nil database.
func Connect(uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	db := client.Database(name)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return db, err
	}
	return db, nil
}
