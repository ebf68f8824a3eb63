package completion

import (
	"fmt"
	"strings"

	"github.com/SscSPs/takehome_app/internal/core/domain"
)

// ProposalGenerationThreshold is the minimum completion percentage required to
// generate proposals. It is a product rule and is not derived from the weights below.
const ProposalGenerationThreshold = 80

const (
	BioMinLength     = 50
	SkillsMinCount   = 3
	ProjectsMinCount = 1
)

type requirement struct {
	key         string
	label       string
	weight      int
	description string
	satisfied   func(p *domain.Profile) bool
}

// checklist weights sum to 100.
var checklist = []requirement{
	{
		key:         "firstName",
		label:       "First Name",
		weight:      10,
		description: "Your first name for personalization",
		satisfied: func(p *domain.Profile) bool {
			return p.PersonalInfo != nil && strings.TrimSpace(p.PersonalInfo.FirstName) != ""
		},
	},
	{
		key:         "jobTitle",
		label:       "Job Title",
		weight:      15,
		description: "Your primary role or profession",
		satisfied: func(p *domain.Profile) bool {
			return p.ProfessionalInfo != nil && strings.TrimSpace(p.ProfessionalInfo.JobTitle) != ""
		},
	},
	{
		key:         "bio",
		label:       "Professional Bio",
		weight:      20,
		description: fmt.Sprintf("At least %d characters describing your expertise", BioMinLength),
		satisfied: func(p *domain.Profile) bool {
			return p.ProfessionalInfo != nil && len([]rune(strings.TrimSpace(p.ProfessionalInfo.Bio))) >= BioMinLength
		},
	},
	{
		key:         "experience",
		label:       "Experience Level",
		weight:      10,
		description: "Years of experience or expertise level",
		satisfied: func(p *domain.Profile) bool {
			return p.ProfessionalInfo != nil && strings.TrimSpace(p.ProfessionalInfo.Experience) != ""
		},
	},
	{
		key:         "skills",
		label:       fmt.Sprintf("At least %d Skills", SkillsMinCount),
		weight:      20,
		description: "Your key technical or professional skills",
		satisfied: func(p *domain.Profile) bool {
			return p.ProfessionalInfo != nil && len(p.ProfessionalInfo.Skills) >= SkillsMinCount
		},
	},
	{
		key:         "projects",
		label:       fmt.Sprintf("At least %d Project", ProjectsMinCount),
		weight:      25,
		description: "A portfolio project with title and description",
		satisfied: func(p *domain.Profile) bool {
			if p.ProfessionalInfo == nil || len(p.ProfessionalInfo.Projects) < ProjectsMinCount {
				return false
			}
			for _, pr := range p.ProfessionalInfo.Projects {
				if strings.TrimSpace(pr.Title) != "" && strings.TrimSpace(pr.Description) != "" {
					return true
				}
			}
			return false
		},
	},
}

// ScoreProfile computes the weighted completion percentage of p together with
// the full checklist. A nil profile satisfies nothing.
func ScoreProfile(p *domain.Profile) domain.CompletionReport {
	reqs := make([]domain.FieldRequirement, 0, len(checklist))
	missingWeight := 0
	for _, r := range checklist {
		missing := p == nil || !r.satisfied(p)
		if missing {
			missingWeight += r.weight
		}
		reqs = append(reqs, domain.FieldRequirement{
			Key:         r.key,
			Label:       r.label,
			Weight:      r.weight,
			IsMissing:   missing,
			Description: r.description,
		})
	}

	pct := 100 - missingWeight
	return domain.CompletionReport{
		Percentage:    pct,
		MissingWeight: missingWeight,
		Status:        StatusFor(pct),
		Requirements:  reqs,
	}
}

// StatusFor maps a completion percentage to its gating tier.
func StatusFor(percentage int) domain.CompletionStatus {
	switch {
	case percentage >= 100:
		return domain.CompletionComplete
	case percentage >= ProposalGenerationThreshold:
		return domain.CompletionReady
	default:
		return domain.CompletionBlocked
	}
}

// StatusMessage is the user-facing line shown next to a completion bar.
func StatusMessage(status domain.CompletionStatus) string {
	switch status {
	case domain.CompletionComplete:
		return "Your profile is fully optimized!"
	case domain.CompletionReady:
		return "Great! You can generate proposals."
	default:
		return fmt.Sprintf("Complete %d%% to unlock proposal generation.", ProposalGenerationThreshold)
	}
}

// CanGenerateProposal reports whether percentage clears the proposal gate.
func CanGenerateProposal(percentage int) bool {
	return percentage >= ProposalGenerationThreshold
}
