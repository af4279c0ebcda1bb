package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a decoration package offered on the services page.
type Service struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Desc         string             `bson:"desc" json:"desc"`
	Price        float64            `bson:"price" json:"price"`
	Availability bool               `bson:"availability" json:"availability"`
	Image        string             `bson:"image" json:"image"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ServiceInput carries create and partial-update payloads. Nil fields are left untouched on update.
type ServiceInput struct {
	Title        *string  `json:"title"`
	Desc         *string  `json:"desc"`
	Price        *float64 `json:"price"`
	Availability *bool    `json:"availability"`
	Image        *string  `json:"image"`
}

// Event is a showcased past or upcoming decoration.
type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Desc         string             `bson:"desc,omitempty" json:"desc,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Availability bool               `bson:"availability" json:"availability"`
	EventDate    *time.Time         `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	EventType    string             `bson:"eventType,omitempty" json:"eventType,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EventInput carries create and partial-update payloads for events.
type EventInput struct {
	Title        *string    `json:"title"`
	Desc         *string    `json:"desc"`
	Image        *string    `json:"image"`
	Price        *float64   `json:"price"`
	Availability *bool      `json:"availability"`
	EventDate    *time.Time `json:"eventDate"`
	EventType    *string    `json:"eventType"`
}

// Testimonial is a customer review shown on the home page.
type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Rating    int                `bson:"rating" json:"rating"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ContentStats feeds the admin dashboard counters.
type ContentStats struct {
	Services     int64 `json:"services"`
	Testimonials int64 `json:"testimonials"`
	Events       int64 `json:"events"`
	Bookings     int64 `json:"bookings"`
}
