package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is a response to an assignment. AssignmentID is not enforced
// as a reference.
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AssignmentID string             `bson:"assignmentId,omitempty" json:"assignmentId,omitempty"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Marks        float64            `bson:"marks,omitempty" json:"marks,omitempty"`
	PDFLink      string             `bson:"pdfLink,omitempty" json:"pdfLink,omitempty"`
	Note         string             `bson:"note,omitempty" json:"note,omitempty"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Status       string             `bson:"status" json:"status"`
	Feedback     string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	ResultMarks  *float64           `bson:"result_marks,omitempty" json:"result_marks,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Grade is the evaluator's verdict applied to a submission.
type Grade struct {
	Status      string  `bson:"status" json:"status"`
	Feedback    string  `bson:"feedback" json:"feedback"`
	ResultMarks float64 `bson:"result_marks" json:"result_marks"`
}
