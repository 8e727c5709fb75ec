package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	ClientName string `bson:"clientName" json:"clientName"`
	Rating     int    `bson:"rating" json:"rating"`
	Review     string `bson:"review" json:"review"`

	Project      string `bson:"project" json:"project"`
	ProjectImage string `bson:"projectImage" json:"projectImage"`

	// Approved gates public visibility; submissions start false.
	Approved bool `bson:"approved" json:"approved"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
