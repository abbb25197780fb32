package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Major is an embedded child of Faculty with no identity of its own.
// It is only ever read or written through its parent document. PDF is
// the stored file name of the major's curriculum PDF, or nil — the API
// emits an explicit null so clients can tell "no PDF" apart from a
// missing key in partial payloads.
type Major struct {
	MajorName string  `bson:"majorName" json:"majorName"`
	PDF       *string `bson:"pdf,omitempty" json:"pdf"`
}

// Faculty aggregates a faculty with its ordered list of majors. The
// order of Majors matches the order the client submitted them in.
type Faculty struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FacultiesName string             `bson:"facultiesName" json:"facultiesName"`
	Img           string             `bson:"img,omitempty" json:"img,omitempty"`
	Majors        []Major            `bson:"majors" json:"majors"`
}
