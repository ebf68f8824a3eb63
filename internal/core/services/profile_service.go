package services

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/SscSPs/takehome_app/internal/dto"
	"github.com/SscSPs/takehome_app/internal/platform/metrics"
	"github.com/SscSPs/takehome_app/internal/utils/completion"
)

type profileService struct {
	BaseService
}

// NewProfileService creates the profile completion service.
func NewProfileService() portssvc.ProfileSvcFacade {
	return &profileService{}
}

// ScoreProfile scores the profile locally. A completion figure reported by the
// profile backend is echoed back and compared; the local score always wins.
func (s *profileService) ScoreProfile(ctx context.Context, req dto.ScoreProfileRequest) (*dto.ProfileCompletionResponse, error) {
	report := completion.ScoreProfile(req.Profile)
	metrics.ProfileScores.Observe(float64(report.Percentage))

	resp := &dto.ProfileCompletionResponse{
		Percentage:          report.Percentage,
		MissingWeight:       report.MissingWeight,
		Status:              report.Status,
		StatusMessage:       completion.StatusMessage(report.Status),
		CanGenerateProposal: completion.CanGenerateProposal(report.Percentage),
		Threshold:           completion.ProposalGenerationThreshold,
		Requirements:        report.Requirements,
	}

	if reported := req.Reported(); reported != nil {
		value := *reported
		resp.ReportedCompletion = &value
		if value != report.Percentage {
			resp.Drift = true
			metrics.ProfileDrift.Inc()
			s.LogWarn(ctx, "Reported profile completion differs from computed value",
				slog.Int("reported", value),
				slog.Int("computed", report.Percentage))
		}
	}

	return resp, nil
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)
