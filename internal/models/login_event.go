package models

import "time"

// LoginEvent records a successful sign-in, written by the auth layer.
// Analytics only ever reads this collection.
type LoginEvent struct {
	UserID    string    `bson:"userId" json:"userId"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	UserRole  UserRole  `bson:"userRole" json:"userRole"`
}
