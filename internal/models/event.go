package models

import "time"

// EventType classifies platform events.
type EventType string

const (
	EventAlumni  EventType = "alumni"
	EventCollege EventType = "college"
	EventClub    EventType = "club"
	EventOthers  EventType = "others"
)

// Event is a scheduled gathering published on the platform.
type Event struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	DateTime    time.Time  `bson:"dateTime" json:"dateTime"`
	EndDateTime *time.Time `bson:"endDateTime,omitempty" json:"endDateTime,omitempty"`
	Venue       string     `bson:"venue" json:"venue"`
	Type        EventType  `bson:"type" json:"type"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// EventSummary is the projection used for upcoming-event highlights.
type EventSummary struct {
	Name     string    `bson:"name" json:"name"`
	DateTime time.Time `bson:"dateTime" json:"dateTime"`
	Venue    string    `bson:"venue" json:"venue"`
	Type     EventType `bson:"type" json:"type"`
}

// EventStub carries only the fields event analytics reduces over.
type EventStub struct {
	DateTime time.Time `bson:"dateTime" json:"dateTime"`
	Type     EventType `bson:"type" json:"type"`
}

// EventFilter captures filtering criteria for listing events.
type EventFilter struct {
	Type     EventType
	Start    *time.Time
	End      *time.Time
	Page     int
	PageSize int
}
