package dto

import "github.com/SscSPs/takehome_app/internal/core/domain"

// ScoreProfileRequest wraps a profile snapshot from the profile backend. A
// missing profile scores zero. ReportedCompletion, when set, takes precedence
// over professionalInfo.profileCompletion as the backend's figure.
type ScoreProfileRequest struct {
	Profile            *domain.Profile `json:"profile"`
	ReportedCompletion *int            `json:"reportedCompletion,omitempty" binding:"omitempty,min=0,max=100"`
}

// Reported returns the backend-reported completion, if any.
func (r ScoreProfileRequest) Reported() *int {
	if r.ReportedCompletion != nil {
		return r.ReportedCompletion
	}
	if r.Profile != nil && r.Profile.ProfessionalInfo != nil {
		return r.Profile.ProfessionalInfo.ProfileCompletion
	}
	return nil
}

// ProfileCompletionResponse defines the API response for a scored profile.
type ProfileCompletionResponse struct {
	Percentage          int                       `json:"percentage"`
	MissingWeight       int                       `json:"missingWeight"`
	Status              domain.CompletionStatus   `json:"status"`
	StatusMessage       string                    `json:"statusMessage"`
	CanGenerateProposal bool                      `json:"canGenerateProposal"`
	Threshold           int                       `json:"threshold"`
	Requirements        []domain.FieldRequirement `json:"requirements"`
	ReportedCompletion  *int                      `json:"reportedCompletion,omitempty"`
	Drift               bool                      `json:"drift"`
}
