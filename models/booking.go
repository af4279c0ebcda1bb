package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a customer's request for decoration services tied to an event date.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID   string             `bson:"bookingId" json:"bookingId"` // Human-facing token, e.g. BK1733040000000
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	EventType   string             `bson:"eventType" json:"eventType"`
	EventDate   time.Time          `bson:"eventDate" json:"eventDate"`
	Venue       string             `bson:"venue,omitempty" json:"venue,omitempty"`
	GuestCount  string             `bson:"guestCount,omitempty" json:"guestCount,omitempty"`
	Budget      string             `bson:"budget,omitempty" json:"budget,omitempty"` // Bucket label, e.g. "₹15K-₹30K"
	FloralStyle []string           `bson:"floralStyle,omitempty" json:"floralStyle,omitempty"`
	Message     string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// BookingCreatedResponse is returned to the client after a successful intake.
type BookingCreatedResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}
