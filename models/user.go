package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an identity record. The password hash is persisted but never
// serialized into a response: json:"-" strips it at the model boundary.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
	EmailID   string             `bson:"email_id" json:"email_id"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
