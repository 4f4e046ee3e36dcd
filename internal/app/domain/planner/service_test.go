package planner

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func newTestService(generator Generator) *ServiceImpl {
	parser := NewParser(&fakeResolver{}, 1000, zap.NewNop())
	return NewServiceImpl(generator, parser, zap.NewNop())
}

func TestGenerateTravelPlan_Success(t *testing.T) {
	generator := new(MockGenerator)
	generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
		Return("Day 1: Check-in: 14:00\n09:00 Fort Walk ₹300\nBreakfast: Cafe A ₹200\nDay 2: 10:00 Market Visit ₹150", nil)

	service := newTestService(generator)
	req := baseRequest(2)

	plan, err := service.GenerateTravelPlan(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.NotEqual(t, "", plan.ID.String())
	assert.False(t, plan.CreatedAt.IsZero())
	assert.Equal(t, req.Destination, plan.Destination)
	assert.Equal(t, req.Budget, plan.Budget)
	assert.Equal(t, req.NumberOfTravelers, plan.NumberOfTravelers)
	require.Len(t, plan.Days, 2)
	assert.Equal(t, "14:00", plan.Days[0].CheckIn)
	assert.LessOrEqual(t, plan.TotalCost(), req.Budget)
	generator.AssertExpectations(t)
}

func TestGenerateTravelPlan_PromptCarriesTripParameters(t *testing.T) {
	generator := new(MockGenerator)
	var prompt string
	generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
		Return("Day 1: a quiet day", nil).
		Run(func(args mock.Arguments) { prompt = args.String(1) })

	service := newTestService(generator)

	_, err := service.GenerateTravelPlan(context.Background(), baseRequest(2))
	require.NoError(t, err)
	assert.Contains(t, prompt, "CityX")
	assert.Contains(t, prompt, "100000")
}

func TestGenerateTravelPlan_GeneratorError(t *testing.T) {
	generator := new(MockGenerator)
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("quota exhausted"))

	service := newTestService(generator)

	plan, err := service.GenerateTravelPlan(context.Background(), baseRequest(1))

	assert.Nil(t, plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI error")
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestGenerateTravelPlan_EmptyResponse(t *testing.T) {
	generator := new(MockGenerator)
	generator.On("Generate", mock.Anything, mock.Anything).Return("   \n\t", nil)

	service := newTestService(generator)

	plan, err := service.GenerateTravelPlan(context.Background(), baseRequest(1))

	assert.Nil(t, plan)
	assert.ErrorIs(t, err, models.ErrEmptyAIResponse)
}

func TestGenerateTravelPlan_BudgetExceeded(t *testing.T) {
	generator := new(MockGenerator)
	// One activity at ₹5000 plus three default meals for two travelers:
	// 5000 + 800 + 1200 + 1600 = 8600 against a budget of 5000.
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("Day 1: 10:00 Helicopter Ride ₹5000", nil)

	service := newTestService(generator)
	req := baseRequest(2)
	req.Budget = 5000

	plan, err := service.GenerateTravelPlan(context.Background(), req)

	assert.Nil(t, plan)
	var budgetErr *models.BudgetExceededError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, 8600, budgetErr.TotalCost)
	assert.Equal(t, 5000, budgetErr.Budget)
}

func TestGenerateTravelPlan_StripsMarkdownBeforeParsing(t *testing.T) {
	generator := new(MockGenerator)
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("**Day 1:** _09:00 Fort Walk_ ₹300", nil)

	service := newTestService(generator)

	plan, err := service.GenerateTravelPlan(context.Background(), baseRequest(1))

	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	require.Len(t, plan.Days[0].Activities, 1)
	assert.Equal(t, "Fort Walk", plan.Days[0].Activities[0].Name)
}
