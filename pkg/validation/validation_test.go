package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primeasset/recruit-landing/pkg/models"
)

func validLead() models.LeadSubmission {
	return models.LeadSubmission{
		Name:       "홍길동",
		Phone:      "010-1234-5678",
		Region:     "서울 강남구",
		Experience: models.ExperienceNew,
		Privacy:    true,
	}
}

func TestValidateAcceptsReferenceLead(t *testing.T) {
	lead, errs := Validate(validLead())
	assert.Nil(t, errs)
	assert.Equal(t, validLead(), lead)
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"010-1234-5678", true},
		{"01012345678", true},
		{"010-12345678", true},
		{"0101234-5678", true},
		{"011-1234-5678", false},
		{"010-123-5678", false},
		{"010-1234-567", false},
		{"010--1234-5678", false},
		{"010 1234 5678", false},
		{"+82-10-1234-5678", false},
		{"010-1234-56789", false},
		{" 010-1234-5678 ", false},
		{"010-1234-5678\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			lead := validLead()
			lead.Phone = tt.phone
			_, errs := Validate(lead)
			if tt.ok {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Equal(t, Messages[models.FieldPhone], errs[models.FieldPhone])
			assert.Equal(t, []string{models.FieldPhone}, errs.Fields())
		})
	}
}

func TestValidatePrivacyMustBeTrue(t *testing.T) {
	lead := validLead()
	lead.Privacy = false

	_, errs := Validate(lead)
	require.NotNil(t, errs)
	assert.Equal(t, []string{models.FieldPrivacy}, errs.Fields())
	assert.Equal(t, Messages[models.FieldPrivacy], errs[models.FieldPrivacy])
}

func TestValidateCollectsAllErrors(t *testing.T) {
	_, errs := Validate(models.LeadSubmission{})
	require.NotNil(t, errs)
	assert.Equal(t, models.FieldOrder, errs.Fields())
	for _, field := range models.FieldOrder {
		assert.Equal(t, Messages[field], errs[field])
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"홍길", true},
		{"Al", true},
		{"홍", false},
		{"  ", true},
		{" 홍", true},
		{"<b>홍</b>", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := validLead()
			lead.Name = tt.name
			_, errs := Validate(lead)
			assert.Equal(t, !tt.ok, errs.Has(models.FieldName))
		})
	}
}

func TestValidateRegion(t *testing.T) {
	lead := validLead()
	lead.Region = ""
	_, errs := Validate(lead)
	assert.True(t, errs.Has(models.FieldRegion))

	lead.Region = " "
	_, errs = Validate(lead)
	assert.Nil(t, errs)

	lead.Region = "부"
	_, errs = Validate(lead)
	assert.Nil(t, errs)
}

func TestValidateExperience(t *testing.T) {
	for _, e := range models.Experiences {
		lead := validLead()
		lead.Experience = e
		_, errs := Validate(lead)
		assert.Nil(t, errs, "experience %q", e)
	}

	for _, bad := range []models.Experience{"", "senior", "NEW"} {
		lead := validLead()
		lead.Experience = bad
		_, errs := Validate(lead)
		assert.True(t, errs.Has(models.FieldExperience), "experience %q", bad)
	}
}

func TestValidateKeepsValuesAsEntered(t *testing.T) {
	lead := validLead()
	lead.Name = "Kim <Lee>"
	lead.Region = "A&amp;B "

	got, errs := Validate(lead)
	assert.Nil(t, errs)
	assert.Equal(t, lead, got)
}

func TestContainsMarkup(t *testing.T) {
	v := New()
	tests := []struct {
		name   string
		region string
		want   bool
	}{
		{"홍길동", "서울 강남구", false},
		{"홍길동", "R&D 센터 'B'동", false},
		{"a < b", "A&amp;B", false},
		{"<b>홍</b>길동", "서울", true},
		{"홍길동", "<script>alert(1)</script>", true},
	}

	for _, tt := range tests {
		lead := validLead()
		lead.Name = tt.name
		lead.Region = tt.region
		assert.Equal(t, tt.want, v.ContainsMarkup(lead), "%q / %q", tt.name, tt.region)
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("010-0000-0000"))
	assert.False(t, ValidPhone("010-0000-000a"))
}
