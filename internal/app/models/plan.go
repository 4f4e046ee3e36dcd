package models

import (
	"time"

	"github.com/google/uuid"
)

// Transportation is how the travelers get around during the trip.
type Transportation string

const (
	TransportationOwn    Transportation = "own"
	TransportationRental Transportation = "rental"
)

// Accommodation is the requested lodging category.
type Accommodation string

const (
	AccommodationHotel  Accommodation = "hotel"
	AccommodationHostel Accommodation = "hostel"
	AccommodationResort Accommodation = "resort"
)

// MealType identifies one of the three fixed daily meals.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// MealTypes is the fixed meal order every TravelDay carries, regardless of
// the order the meals appear in the source text.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

// GeoPoint is a resolved coordinate pair. The zero value (0,0) is the
// "unresolved location" sentinel and never a legitimate location.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether the point is the unresolved-location sentinel.
func (p GeoPoint) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}

// TripRequest is the immutable input to plan generation.
type TripRequest struct {
	Destination       string         `json:"destination" binding:"required"`
	Budget            int            `json:"budget" binding:"required,gt=0"`
	Interests         []string       `json:"interests"`
	NumberOfTravelers int            `json:"numberOfTravelers" binding:"required,min=1"`
	Transportation    Transportation `json:"transportation" binding:"required,oneof=own rental"`
	NumberOfDays      int            `json:"numberOfDays" binding:"required,min=1"`
	Accommodation     Accommodation  `json:"accommodation" binding:"required,oneof=hotel hostel resort"`
	Description       string         `json:"description"`
}

// Activity is a timed item recovered from one day of the AI response. Time is
// kept verbatim ("HH:MM" or "HH:MM - HH:MM"), never parsed into minutes.
// Cost is already scaled to the whole traveler group.
type Activity struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Time        string   `json:"time"`
	Cost        int      `json:"cost"`
	Location    GeoPoint `json:"location"`
	Address     string   `json:"address"`
}

// Meal is one of the three fixed meals of a travel day. Cost is always
// scaled to the whole traveler group.
type Meal struct {
	Type       MealType `json:"type"`
	Name       string   `json:"name"`
	Restaurant string   `json:"restaurant"`
	Cuisine    string   `json:"cuisine"`
	Cost       int      `json:"cost"`
	Location   GeoPoint `json:"location"`
	Address    string   `json:"address"`
}

// TravelDay is one parsed day segment. Day numbers are positional (1-based)
// and gap-free even when the source text mislabels or skips a day.
type TravelDay struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
	Meals      []Meal     `json:"meals"`
	CheckIn    string     `json:"checkIn,omitempty"`
	CheckOut   string     `json:"checkOut,omitempty"`
}

// TravelPlan is a fully parsed, budget-checked itinerary. It echoes the
// originating TripRequest and is never mutated after creation.
type TravelPlan struct {
	ID                uuid.UUID      `json:"id"`
	Destination       string         `json:"destination"`
	Budget            int            `json:"budget"`
	Interests         []string       `json:"interests"`
	NumberOfTravelers int            `json:"numberOfTravelers"`
	Transportation    Transportation `json:"transportation"`
	NumberOfDays      int            `json:"numberOfDays"`
	Accommodation     Accommodation  `json:"accommodation"`
	Description       string         `json:"description"`
	Days              []TravelDay    `json:"days"`
	CreatedAt         time.Time      `json:"createdAt"`
}

// TotalCost sums every activity and meal cost across all days.
func (p *TravelPlan) TotalCost() int {
	total := 0
	for _, day := range p.Days {
		for _, activity := range day.Activities {
			total += activity.Cost
		}
		for _, meal := range day.Meals {
			total += meal.Cost
		}
	}
	return total
}
