package planner

import (
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

// promptTemplate loosely constrains the model's output format. The parser
// treats the format as a suggestion, not a grammar: every extraction point
// has a fallback when the model drifts from it.
const promptTemplate = `Create a detailed {numberOfDays}-day travel itinerary for {destination} with a STRICT total budget of ₹{budget} for {travelers} travelers. DO NOT exceed this budget.

Trip Details:
- Accommodation: {accommodation} ({travelers} travelers)
- Transportation: {transportation}
- Interests: {interests}
- Additional Requirements: {description}

Budget Breakdown Guidelines (Total: ₹{budget}):
Accommodation: 30% of budget
Activities: 40% of budget
Meals: 20% of budget
Transportation: 10% of budget

Provide a VERY detailed itinerary with:
1. Check-in and check-out times for accommodation
2. Detailed daily schedule with specific times (morning, afternoon, evening activities)
3. Restaurant recommendations for breakfast (₹300-500/person), lunch (₹500-800/person), and dinner (₹700-1000/person)
4. Exact costs in INR (₹) for each activity, meal, and accommodation
5. Transportation details between locations with estimated times
6. Specific locations and landmarks with complete addresses

CRITICAL: Ensure all costs combined DO NOT exceed the total budget of ₹{budget}.

Format each day as follows:

Day X:
Check-in: HH:MM (if applicable)
Check-out: HH:MM (if applicable)

Morning Activities:
09:00 - 10:30 Activity Name (Full Address) ₹Cost
[Brief description of the activity]

Afternoon Activities:
13:00 - 14:30 Activity Name (Full Address) ₹Cost
[Brief description of the activity]

Evening Activities:
18:00 - 19:30 Activity Name (Full Address) ₹Cost
[Brief description of the activity]

Meals:
Breakfast: Restaurant Name (Full Address) - Cuisine Type ₹Cost
Lunch: Restaurant Name (Full Address) - Cuisine Type ₹Cost
Dinner: Restaurant Name (Full Address) - Cuisine Type ₹Cost

Transportation Details:
[Specific details about getting between locations]

Important:
- All costs must be in INR (₹) and adjusted for {travelers} travelers
- Include specific time slots for each activity
- Provide actual restaurant names and cuisines with addresses
- Include brief descriptions for each activity/location
- Factor in travel time between locations`

// buildItineraryPrompt fills the template from the trip request.
func buildItineraryPrompt(req models.TripRequest) string {
	description := req.Description
	if description == "" {
		description = "No additional requirements"
	}

	return strings.NewReplacer(
		"{destination}", req.Destination,
		"{budget}", strconv.Itoa(req.Budget),
		"{travelers}", strconv.Itoa(req.NumberOfTravelers),
		"{transportation}", string(req.Transportation),
		"{numberOfDays}", strconv.Itoa(req.NumberOfDays),
		"{accommodation}", string(req.Accommodation),
		"{interests}", strings.Join(req.Interests, ", "),
		"{description}", description,
	).Replace(promptTemplate)
}
