package validation

import (
	"errors"
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/primeasset/recruit-landing/pkg/models"
)

// PhonePattern accepts Korean mobile numbers: 010 prefix, 11 digits,
// optional hyphens between the groups
const PhonePattern = `^010-?([0-9]{4})-?([0-9]{4})$`

var phoneRegexp = regexp.MustCompile(PhonePattern)

// Messages shown next to each field when its rule fails
var Messages = map[string]string{
	models.FieldName:       "이름은 2글자 이상이어야 합니다.",
	models.FieldPhone:      "올바른 휴대폰 번호 형식이 아닙니다. (예: 010-1234-5678)",
	models.FieldRegion:     "거주지역을 입력해주세요.",
	models.FieldExperience: "경력 사항을 선택해주세요.",
	models.FieldPrivacy:    "개인정보 수집 및 이용에 동의해야 합니다.",
}

// Validator checks a LeadSubmission against the form schema
type Validator struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
}

// New creates a Validator with the lead form rules registered
func New() *Validator {
	v := validator.New()

	// Report errors under the JSON field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("mobile_kr", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("experience", func(fl validator.FieldLevel) bool {
		return models.Experience(fl.Field().String()).Valid()
	})

	return &Validator{
		validate: v,
		policy:   bluemonday.StrictPolicy(),
	}
}

// ContainsMarkup reports whether the free text fields of lead carry HTML
// tags. Values are never rewritten; the flag only feeds the dispatch log.
func (v *Validator) ContainsMarkup(lead models.LeadSubmission) bool {
	return v.hasMarkup(lead.Name) || v.hasMarkup(lead.Region)
}

func (v *Validator) hasMarkup(s string) bool {
	return html.UnescapeString(v.policy.Sanitize(s)) != html.UnescapeString(s)
}

// Validate applies every field rule to lead exactly as entered. All
// violations are collected; the returned FieldErrors is nil when the lead is
// valid. The returned lead is the one that was checked.
func (v *Validator) Validate(lead models.LeadSubmission) (models.LeadSubmission, models.FieldErrors) {
	err := v.validate.Struct(lead)
	if err == nil {
		return lead, nil
	}

	fieldErrs := models.FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError only happens for non-struct input
		for _, field := range models.FieldOrder {
			fieldErrs[field] = Messages[field]
		}
		return lead, fieldErrs
	}

	for _, fe := range verrs {
		if msg, ok := Messages[fe.Field()]; ok {
			fieldErrs[fe.Field()] = msg
		}
	}
	return lead, fieldErrs
}

var std = New()

// Default returns the shared Validator
func Default() *Validator {
	return std
}

// Validate runs the default Validator
func Validate(lead models.LeadSubmission) (models.LeadSubmission, models.FieldErrors) {
	return std.Validate(lead)
}

// ValidPhone reports whether phone matches PhonePattern
func ValidPhone(phone string) bool {
	return phoneRegexp.MatchString(phone)
}
