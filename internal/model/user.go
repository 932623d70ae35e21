// Package model defines the document shapes persisted in MongoDB. The json
// tags are deliberately omitted: these structs are used by the repository
// layer, and handlers define separate response types with the exact field
// selection each endpoint exposes.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles. Anything else is rejected at the API boundary; new accounts
// default to RoleUser.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether s is one of the known account roles.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleUser
}

// User is a storefront account stored in the `users` collection. Email is
// unique across all users. Password holds a bcrypt hash, never cleartext.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
