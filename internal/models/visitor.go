package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Visitor struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Page      string    `bson:"page" json:"page"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`

	UserAgent        string `bson:"userAgent" json:"userAgent"`
	Referrer         string `bson:"referrer" json:"referrer"`
	Browser          string `bson:"browser" json:"browser"`
	Platform         string `bson:"platform" json:"platform"`
	Language         string `bson:"language" json:"language"`
	ScreenResolution string `bson:"screenResolution" json:"screenResolution"`

	Source string `bson:"source" json:"source"`
	Device string `bson:"device" json:"device"`
}

// GroupCount is one bucket of an aggregate query over visitor events.
type GroupCount struct {
	Key   string `bson:"_id" json:"key"`
	Count int64  `bson:"count" json:"count"`
}
