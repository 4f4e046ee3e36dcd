package planner

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

// fakeResolver records queries and serves canned points; unknown queries
// resolve to the zero sentinel, mirroring the real resolver's contract.
type fakeResolver struct {
	mu      sync.Mutex
	queries []string
	points  map[string]models.GeoPoint
}

func (f *fakeResolver) Resolve(_ context.Context, query string) models.GeoPoint {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.points[query]
}

func (f *fakeResolver) queryCount(query string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, q := range f.queries {
		if q == query {
			n++
		}
	}
	return n
}

func newTestParser(resolver *fakeResolver) *Parser {
	return NewParser(resolver, 1000, zap.NewNop())
}

func baseRequest(travelers int) models.TripRequest {
	return models.TripRequest{
		Destination:       "CityX",
		Budget:            100000,
		NumberOfTravelers: travelers,
		Transportation:    models.TransportationOwn,
		NumberOfDays:      3,
		Accommodation:     models.AccommodationHotel,
	}
}

func TestParse_DayNumberingIsPositional(t *testing.T) {
	parser := newTestParser(&fakeResolver{})
	text := "Day 1: first day plans\nDay 3: second day plans\nDay 7- third day plans"

	days := parser.Parse(context.Background(), text, baseRequest(1))

	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, 3, days[2].Day)
}

func TestParse_PreambleBeforeFirstLabelIsNotADay(t *testing.T) {
	parser := newTestParser(&fakeResolver{})
	text := "Here is a wonderful itinerary for your trip!\n\nDay 1: explore the old town"

	days := parser.Parse(context.Background(), text, baseRequest(1))

	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Day)
}

func TestParse_NoDayLabelsYieldsEmptyPlan(t *testing.T) {
	parser := newTestParser(&fakeResolver{})

	days := parser.Parse(context.Background(), "Sorry, I cannot help with that.", baseRequest(1))

	assert.Empty(t, days)
}

func TestParse_SegmentWithoutActivitySpans(t *testing.T) {
	parser := newTestParser(&fakeResolver{})
	text := "Day 1: a relaxed day with no fixed schedule"

	days := parser.Parse(context.Background(), text, baseRequest(2))

	require.Len(t, days, 1)
	assert.Empty(t, days[0].Activities)
	// Meals are always present even when the text never mentions them.
	require.Len(t, days[0].Meals, 3)
}

func TestExtractActivities_PreservesSourceOrder(t *testing.T) {
	parser := newTestParser(&fakeResolver{})
	segment := "09:00 Fort Walk ₹300\n13:00 Market Visit ₹200\n18:00 - 19:30 River Cruise ₹900"

	activities := parser.extractActivities(context.Background(), segment, baseRequest(1))

	require.Len(t, activities, 3)
	assert.Equal(t, "Fort Walk", activities[0].Name)
	assert.Equal(t, "Market Visit", activities[1].Name)
	assert.Equal(t, "River Cruise", activities[2].Name)
	assert.Equal(t, "18:00 - 19:30", activities[2].Time)
}

func TestExtractActivity_CostNormalization(t *testing.T) {
	parser := newTestParser(&fakeResolver{})

	perPerson := parser.extractActivity(context.Background(), "10:00 Palace Tour ₹500", baseRequest(4))
	assert.Equal(t, 2000, perPerson.Cost, "figures at or below the threshold scale with the group")

	total := parser.extractActivity(context.Background(), "10:00 Helicopter Ride ₹5000", baseRequest(4))
	assert.Equal(t, 5000, total.Cost, "figures above the threshold are already totals")

	free := parser.extractActivity(context.Background(), "10:00 Beach Stroll", baseRequest(4))
	assert.Equal(t, 0, free.Cost)
}

func TestExtractActivity_NameDescriptionAndAddress(t *testing.T) {
	resolver := &fakeResolver{points: map[string]models.GeoPoint{
		"City Palace, Udaipur": {Lat: 24.576, Lng: 73.683},
	}}
	parser := newTestParser(resolver)
	req := baseRequest(2)
	req.Destination = "Udaipur"

	activity := parser.extractActivity(context.Background(), "09:00 - 11:00 Palace Tour (City Palace) ₹400", req)

	assert.Equal(t, "09:00 - 11:00", activity.Time)
	assert.Equal(t, "Palace Tour", activity.Name)
	assert.Equal(t, "Palace Tour (City Palace)", activity.Description)
	assert.Equal(t, "City Palace", activity.Address)
	assert.Equal(t, 800, activity.Cost)
	assert.InDelta(t, 24.576, activity.Location.Lat, 1e-9)
}

func TestExtractActivity_UnresolvableAddressKeepsRecord(t *testing.T) {
	parser := newTestParser(&fakeResolver{})

	activity := parser.extractActivity(context.Background(), "10:00 Hidden Gem (No Such Place) ₹100", baseRequest(1))

	assert.Equal(t, "Hidden Gem", activity.Name)
	assert.Equal(t, "No Such Place", activity.Address)
	assert.True(t, activity.Location.IsZero())
}

func TestExtractMeals_FixedOrderAndDefaults(t *testing.T) {
	parser := newTestParser(&fakeResolver{})

	meals := parser.extractMeals(context.Background(), "nothing about food here", baseRequest(2))

	require.Len(t, meals, 3)
	assert.Equal(t, models.MealTypeBreakfast, meals[0].Type)
	assert.Equal(t, models.MealTypeLunch, meals[1].Type)
	assert.Equal(t, models.MealTypeDinner, meals[2].Type)

	for _, meal := range meals {
		assert.Equal(t, "Local Restaurant", meal.Restaurant)
		assert.Equal(t, "Local", meal.Cuisine)
		assert.True(t, meal.Location.IsZero())
	}
	assert.Equal(t, 800, meals[0].Cost)
	assert.Equal(t, 1200, meals[1].Cost)
	assert.Equal(t, 1600, meals[2].Cost)
}

func TestExtractMeals_ExplicitCostAndFixedOrderRegardlessOfSource(t *testing.T) {
	parser := newTestParser(&fakeResolver{})
	// Dinner appears before breakfast in the text; output order is fixed.
	segment := "Dinner: Spice Route - North Indian ₹750\nBreakfast: Udupi Grand - South Indian ₹250"

	meals := parser.extractMeals(context.Background(), segment, baseRequest(2))

	require.Len(t, meals, 3)
	assert.Equal(t, models.MealTypeBreakfast, meals[0].Type)
	assert.Equal(t, 500, meals[0].Cost)
	assert.Equal(t, "South Indian", meals[0].Cuisine)

	assert.Equal(t, models.MealTypeLunch, meals[1].Type)
	assert.Equal(t, 1200, meals[1].Cost, "unmatched lunch falls back to its default")

	assert.Equal(t, models.MealTypeDinner, meals[2].Type)
	assert.Equal(t, 1500, meals[2].Cost)
	assert.Equal(t, "North Indian", meals[2].Cuisine)
}

func TestExtractMeal_AddressAndRestaurantName(t *testing.T) {
	resolver := &fakeResolver{points: map[string]models.GeoPoint{
		"MG Road, CityX": {Lat: 12.97, Lng: 77.6},
	}}
	parser := newTestParser(resolver)

	meal := parser.extractMeal(context.Background(), models.MealTypeLunch, "Lunch: Casa Roma (MG Road) - Italian ₹650", baseRequest(1))

	assert.Equal(t, "Casa Roma  - Italian", meal.Restaurant)
	assert.Equal(t, "MG Road", meal.Address)
	assert.Equal(t, "Italian", meal.Cuisine)
	assert.Equal(t, 650, meal.Cost)
	assert.InDelta(t, 12.97, meal.Location.Lat, 1e-9)
}

func TestExtractMeal_DuplicateLabelsFirstWins(t *testing.T) {
	parser := newTestParser(&fakeResolver{})
	segment := "Breakfast: Cafe One ₹300\nBreakfast: Cafe Two ₹900"

	meal := parser.extractMeal(context.Background(), models.MealTypeBreakfast, segment, baseRequest(1))

	assert.Equal(t, "Cafe One", meal.Restaurant)
	assert.Equal(t, 300, meal.Cost)
}

func TestClassifyCuisine(t *testing.T) {
	assert.Equal(t, "Italian", classifyCuisine("La Piazza - italian fine dining"))
	assert.Equal(t, "South Indian", classifyCuisine("Udupi Grand - South Indian"))
	assert.Equal(t, "Local", classifyCuisine("The Corner Bistro"))
	assert.Equal(t, "Mediterranean", classifyCuisine("MEDITERRANEAN grill"))
}

func TestParseDay_CheckInAndCheckOut(t *testing.T) {
	parser := newTestParser(&fakeResolver{})

	day := parser.parseDay(context.Background(), 1, "Check-in: 14:00\nCheck-out: 11:00", baseRequest(1))
	assert.Equal(t, "14:00", day.CheckIn)
	assert.Equal(t, "11:00", day.CheckOut)

	day = parser.parseDay(context.Background(), 1, "check in 09:30 at the hostel", baseRequest(1))
	assert.Equal(t, "09:30", day.CheckIn)
	assert.Empty(t, day.CheckOut)
}

func TestCleanResponseText(t *testing.T) {
	assert.Equal(t, "Day 1: Fort Walk", cleanResponseText("**Day 1:** _Fort Walk_"))
}

func TestParse_EndToEnd(t *testing.T) {
	resolver := &fakeResolver{points: map[string]models.GeoPoint{
		"Main Square, CityX, CityX": {Lat: 10.5, Lng: 20.5},
	}}
	parser := newTestParser(resolver)

	text := "Day 1: Check-in: 14:00\nMorning Activities:\n09:00 - 10:30 City Tour (Main Square, CityX) ₹800\nMeals:\nBreakfast: Cafe A (Main Square, CityX) ₹400"
	days := parser.Parse(context.Background(), text, baseRequest(2))

	require.Len(t, days, 1)
	day := days[0]
	assert.Equal(t, 1, day.Day)
	assert.Equal(t, "14:00", day.CheckIn)
	assert.Empty(t, day.CheckOut)

	require.Len(t, day.Activities, 1)
	activity := day.Activities[0]
	assert.Equal(t, "City Tour", activity.Name)
	assert.Equal(t, "09:00 - 10:30", activity.Time)
	assert.Equal(t, 1600, activity.Cost)
	assert.Equal(t, "Main Square, CityX", activity.Address)
	assert.InDelta(t, 10.5, activity.Location.Lat, 1e-9)

	require.Len(t, day.Meals, 3)
	breakfast := day.Meals[0]
	assert.Equal(t, models.MealTypeBreakfast, breakfast.Type)
	assert.Equal(t, "Cafe A", breakfast.Restaurant)
	assert.Equal(t, 800, breakfast.Cost)
	assert.InDelta(t, 10.5, breakfast.Location.Lat, 1e-9)

	assert.Equal(t, 1200, day.Meals[1].Cost, "lunch falls back to its default")
	assert.Equal(t, 1600, day.Meals[2].Cost, "dinner falls back to its default")

	assert.Equal(t, 2, resolver.queryCount("Main Square, CityX, CityX"))
}
