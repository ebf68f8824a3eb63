package services

import (
	"context"

	"github.com/SscSPs/takehome_app/internal/dto"
)

// ProfileSvcFacade scores profile completeness.
type ProfileSvcFacade interface {
	ScoreProfile(ctx context.Context, req dto.ScoreProfileRequest) (*dto.ProfileCompletionResponse, error)
}
