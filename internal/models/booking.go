package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	ClientName string `bson:"clientName" json:"clientName"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone" json:"phone"`

	Location    string `bson:"location" json:"location"`
	Budget      string `bson:"budget" json:"budget"`
	Message     string `bson:"message" json:"message"`
	ServiceType string `bson:"serviceType" json:"serviceType"`

	// BookingDate carries the calendar day; BookingTime is a slot token
	// such as "10:00", not a timestamp.
	BookingDate time.Time `bson:"bookingDate" json:"bookingDate"`
	BookingTime string    `bson:"bookingTime" json:"bookingTime"`

	Status string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
