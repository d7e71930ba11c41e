package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattcarrick/advisor/internal/models"
)

type mockGeminiClient struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (m *mockGeminiClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockGeminiClient) Close() error { return nil }

func validProfile() models.ClientProfile {
	return models.ClientProfile{
		Name:          "Priya",
		Age:           25,
		Income:        9000000,
		RiskTolerance: "High",
		Goal:          "Retirement",
	}
}

func TestRecommend(t *testing.T) {
	mock := &mockGeminiClient{response: sampleResponse}
	service := NewService(mock, nil)

	result, err := service.Recommend(context.Background(), validProfile())

	require.NoError(t, err)
	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, models.AllocationWeights{Stocks: 80, Bonds: 15, Cash: 5}, result.Allocation)
	assert.False(t, result.Buckets.IsEmpty())
	assert.Empty(t, result.RawFallback)
	assert.False(t, result.Degraded())
	assert.False(t, result.GeneratedAt.IsZero())
	assert.Contains(t, mock.lastPrompt, "₹90,00,000")
}

func TestRecommendValidationFailsBeforeGeneratorCall(t *testing.T) {
	mock := &mockGeminiClient{response: sampleResponse}
	service := NewService(mock, nil)

	profile := validProfile()
	profile.Age = 15

	_, err := service.Recommend(context.Background(), profile)

	require.Error(t, err)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "age", validationErr.Field)
	assert.Equal(t, 0, mock.calls)
}

func TestRecommendDegradedFallback(t *testing.T) {
	mock := &mockGeminiClient{response: "I am unable to produce structured output today."}
	service := NewService(mock, nil)

	result, err := service.Recommend(context.Background(), validProfile())

	require.NoError(t, err)
	assert.True(t, result.Degraded())
	assert.True(t, result.Buckets.IsEmpty())
	assert.Equal(t, mock.response, result.RawFallback)
	assert.Equal(t, models.AllocationWeights{Stocks: 80, Bonds: 15, Cash: 5}, result.Allocation)
}

func TestRecommendTransportError(t *testing.T) {
	mock := &mockGeminiClient{err: errors.New("connection reset")}
	service := NewService(mock, nil)

	_, err := service.Recommend(context.Background(), validProfile())

	require.Error(t, err)
	var serviceErr *models.ExternalServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "gemini", serviceErr.Op)
	assert.ErrorContains(t, err, "connection reset")
}

func TestRecommendWithoutClient(t *testing.T) {
	service := NewService(nil, nil)

	_, err := service.Recommend(context.Background(), validProfile())

	require.Error(t, err)
	var serviceErr *models.ExternalServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.ErrorIs(t, err, ErrGeneratorUnavailable)
}

func TestPreview(t *testing.T) {
	service := NewService(nil, nil)

	allocation, explanation, err := service.Preview(validProfile())

	require.NoError(t, err)
	assert.Equal(t, 100, allocation.Sum())
	assert.Contains(t, explanation, "At 25 years old")
	assert.Contains(t, explanation, "retirement planning")
}

func TestPreviewInvalidProfile(t *testing.T) {
	service := NewService(nil, nil)

	_, _, err := service.Preview(models.ClientProfile{Age: 30})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "income", validationErr.Field)
}
