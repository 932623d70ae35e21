package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farazfarwa/fashionhub/internal/model"
)

// ContactRepo writes to the append-only `contact_messages` collection.
type ContactRepo struct {
	col *mongo.Collection
}

func NewContactRepo(db *mongo.Database) *ContactRepo {
	return &ContactRepo{col: db.Collection("contact_messages")}
}

// Insert stores a contact message. There is no read path: the inbox is
// consumed out of band.
func (r *ContactRepo) Insert(ctx context.Context, m *model.ContactMessage) error {
	m.CreatedAt = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
