package advisor

import (
	"context"
	"errors"
	"time"

	"github.com/mattcarrick/advisor/internal/common"
	"github.com/mattcarrick/advisor/internal/interfaces"
	"github.com/mattcarrick/advisor/internal/models"
)

// ErrGeneratorUnavailable is returned when no text-generation client was
// configured. Distinct from transport failures so the caller can report
// missing configuration separately.
var ErrGeneratorUnavailable = errors.New("text generation client not configured")

// Service implements the AdvisorService interface.
type Service struct {
	gemini interfaces.GeminiClient
	logger *common.Logger
}

// NewService creates a new advisor service. The gemini client may be nil, in
// which case Recommend fails fast and Preview still works.
func NewService(gemini interfaces.GeminiClient, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		gemini: gemini,
		logger: logger,
	}
}

// Recommend runs the full recommendation pipeline: validate the profile,
// compute the baseline allocation for the risk tier, ask the generator to
// fill each bucket, and parse its output. Generator content that cannot be
// parsed degrades to a raw fallback on the result rather than failing.
func (s *Service) Recommend(ctx context.Context, profile models.ClientProfile) (*models.RecommendationResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	risk := models.ParseRiskTolerance(profile.RiskTolerance)
	allocation := BaselineAllocation(risk)

	if s.gemini == nil {
		return nil, &models.ExternalServiceError{Op: "gemini", Err: ErrGeneratorUnavailable}
	}

	prompt := BuildPrompt(profile, allocation)

	s.logger.Debug().
		Int("age", profile.Age).
		Str("risk_tolerance", string(risk)).
		Str("goal", profile.Goal).
		Msg("Requesting portfolio recommendation")

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &models.ExternalServiceError{Op: "gemini", Err: err}
	}

	buckets, fallback := ExtractBuckets(text)
	if fallback != "" {
		s.logger.Warn().Msg("Generator response could not be parsed, returning raw text")
	}

	return &models.RecommendationResult{
		Profile:     profile,
		Allocation:  allocation,
		Buckets:     buckets,
		RawFallback: fallback,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Preview computes the heuristic allocation and its narrative locally.
// No external call is made.
func (s *Service) Preview(profile models.ClientProfile) (models.AllocationWeights, string, error) {
	if err := profile.Validate(); err != nil {
		return models.AllocationWeights{}, "", err
	}

	allocation := ComputeAllocation(profile.Age, models.ParseRiskTolerance(profile.RiskTolerance), models.ParseGoal(profile.Goal))
	return allocation, BuildExplanation(profile, allocation), nil
}

// Ensure Service implements AdvisorService
var _ interfaces.AdvisorService = (*Service)(nil)
