package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contact represents a staff contact entry. Img names a stored image
// file and is absent from the document when no photo has been set.
type Contact struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Phone    string             `bson:"phone" json:"phone"`
	Telegram string             `bson:"telegram" json:"telegram"`
	Img      string             `bson:"img,omitempty" json:"img,omitempty"`
}
