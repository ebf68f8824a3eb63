package domain

// Profile is a read-only snapshot of a user profile owned by the external backend.
type Profile struct {
	PersonalInfo     *PersonalInfo     `json:"personalInfo,omitempty"`
	ProfessionalInfo *ProfessionalInfo `json:"professionalInfo,omitempty"`
}

// PersonalInfo holds the personal part of a profile.
type PersonalInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ProfessionalInfo holds the professional part of a profile. ProfileCompletion
// is the percentage the backend stored, if any.
type ProfessionalInfo struct {
	JobTitle          string    `json:"jobTitle,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Experience        string    `json:"experience,omitempty"`
	Skills            []string  `json:"skills,omitempty"`
	Projects          []Project `json:"projects,omitempty"`
	ProfileCompletion *int      `json:"profileCompletion,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// FieldRequirement is one row of the completion checklist.
type FieldRequirement struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Weight      int    `json:"weight"`
	IsMissing   bool   `json:"isMissing"`
	Description string `json:"description"`
}

// CompletionStatus is the gating tier derived from a completion percentage.
type CompletionStatus string

const (
	CompletionComplete CompletionStatus = "COMPLETE"
	CompletionReady    CompletionStatus = "READY"
	CompletionBlocked  CompletionStatus = "BLOCKED"
)

// CompletionReport is the result of scoring a profile.
type CompletionReport struct {
	Percentage    int                `json:"percentage"`
	MissingWeight int                `json:"missingWeight"`
	Status        CompletionStatus   `json:"status"`
	Requirements  []FieldRequirement `json:"requirements"`
}

// Missing returns the unmet requirements in checklist order.
func (r CompletionReport) Missing() []FieldRequirement {
	var out []FieldRequirement
	for _, req := range r.Requirements {
		if req.IsMissing {
			out = append(out, req)
		}
	}
	return out
}

// Completed returns the satisfied requirements in checklist order.
func (r CompletionReport) Completed() []FieldRequirement {
	var out []FieldRequirement
	for _, req := range r.Requirements {
		if !req.IsMissing {
			out = append(out, req)
		}
	}
	return out
}
