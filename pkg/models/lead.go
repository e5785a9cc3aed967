package models

// Experience is the applicant's self-reported career level
type Experience string

const (
	ExperienceNew     Experience = "new"
	ExperienceUnder1  Experience = "under_1"
	Experience1To3    Experience = "1_3"
	ExperienceOver3   Experience = "over_3"
	ExperienceManager Experience = "manager"
)

// Experiences lists every accepted token in the order the form shows them
var Experiences = []Experience{
	ExperienceNew,
	ExperienceUnder1,
	Experience1To3,
	ExperienceOver3,
	ExperienceManager,
}

var experienceLabels = map[Experience]string{
	ExperienceNew:     "신입 (경력 없음)",
	ExperienceUnder1:  "1년 미만",
	Experience1To3:    "1년 ~ 3년",
	ExperienceOver3:   "3년 이상",
	ExperienceManager: "관리자/팀장급",
}

// Label returns the human readable option text, or the raw token if unknown
func (e Experience) Label() string {
	if label, ok := experienceLabels[e]; ok {
		return label
	}
	return string(e)
}

// Valid reports whether e is one of the accepted tokens
func (e Experience) Valid() bool {
	_, ok := experienceLabels[e]
	return ok
}

// Form field names, shared by the JSON payload, HTML inputs and error maps
const (
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldRegion     = "region"
	FieldExperience = "experience"
	FieldPrivacy    = "privacy"
)

// FieldOrder is the order fields appear on the form
var FieldOrder = []string{FieldName, FieldPhone, FieldRegion, FieldExperience, FieldPrivacy}

// LeadSubmission is the data collected by the recruitment form.
// It is the exact body sent to the lead intake endpoint.
type LeadSubmission struct {
	Name       string     `json:"name" form:"name" validate:"min=2"`
	Phone      string     `json:"phone" form:"phone" validate:"mobile_kr"`
	Region     string     `json:"region" form:"region" validate:"min=1"`
	Experience Experience `json:"experience" form:"experience" validate:"required,experience"`
	Privacy    bool       `json:"privacy" form:"privacy" validate:"eq=true"`
}

// FieldErrors maps a field name to the message shown next to it
type FieldErrors map[string]string

// Has reports whether field carries an error
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// Fields returns the offending field names in form order
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for _, name := range FieldOrder {
		if f.Has(name) {
			fields = append(fields, name)
		}
	}
	return fields
}
