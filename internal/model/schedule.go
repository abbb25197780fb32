package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Schedule represents an academic schedule, optionally backed by an
// uploaded PDF. PDFPath names the stored file; PDFName is the display
// name shown to users. Both are absent from the document when the
// schedule carries no attachment.
type Schedule struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	PDFPath string             `bson:"pdfPath,omitempty" json:"pdfPath,omitempty"`
	PDFName string             `bson:"pdfName,omitempty" json:"pdfName,omitempty"`
}
