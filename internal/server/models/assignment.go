// Package models defines the records stored in the document database and
// the outcomes of write operations.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty of an assignment.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Assignment is a task published for submissions.
type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	Difficulty  Difficulty         `bson:"difficulty" json:"difficulty"`
	Marks       float64            `bson:"marks" json:"marks"`
	// ThumbnailURL is an image link supplied by the client.
	ThumbnailURL string `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	// UploadedThumb is the public URL of an image uploaded through the server.
	UploadedThumb string `bson:"uploadedThumb,omitempty" json:"uploadedThumb,omitempty"`
	// Email of the creator, if the client supplied one.
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AssignmentFields are the attributes replaced by an assignment update.
type AssignmentFields struct {
	Title        string     `bson:"title" json:"title"`
	Description  string     `bson:"description" json:"description"`
	Date         string     `bson:"date" json:"date"`
	Difficulty   Difficulty `bson:"difficulty" json:"difficulty"`
	Marks        float64    `bson:"marks" json:"marks"`
	ThumbnailURL string     `bson:"thumbnailUrl" json:"thumbnailUrl"`
}

// AssignmentFilter narrows assignment listings. Empty Difficulty means any.
type AssignmentFilter struct {
	Difficulty Difficulty
}

// AssignmentPage is one page of the assignment listing.
type AssignmentPage struct {
	// Total is the number of assignments matching the filter across all pages.
	Total      int64         `json:"total"`
	TotalPages int64         `json:"totalPages"`
	Page       int64         `json:"page"`
	Data       []*Assignment `json:"data"`
}
