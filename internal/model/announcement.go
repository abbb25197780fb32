package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Announcement represents a campus announcement. Image is a required
// reference to a stored or external image; the optional PDF pair is
// absent from the document when no attachment exists.
type Announcement struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Image   string             `bson:"image" json:"image"`
	Content string             `bson:"content,omitempty" json:"content,omitempty"`
	PDFName string             `bson:"pdfName,omitempty" json:"pdfName,omitempty"`
	PDFPath string             `bson:"pdfPath,omitempty" json:"pdfPath,omitempty"`
}
