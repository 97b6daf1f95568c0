package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/stricto/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		subject domain.Subject
		split   domain.SubjectSplit
		want    domain.Proficiency
	}{
		{
			name:    "listed weak",
			subject: domain.SubjectMath,
			split:   domain.SubjectSplit{Weak: []string{"Math"}},
			want:    domain.ProficiencyWeak,
		},
		{
			name:    "case insensitive",
			subject: domain.SubjectReasoning,
			split:   domain.SubjectSplit{Weak: []string{"reasoning"}},
			want:    domain.ProficiencyWeak,
		},
		{
			name:    "partial entry matches subject",
			subject: domain.SubjectEnglish,
			split:   domain.SubjectSplit{Strong: []string{"eng"}},
			want:    domain.ProficiencyStrong,
		},
		{
			name:    "gk alias maps to ga",
			subject: domain.SubjectGA,
			split:   domain.SubjectSplit{Weak: []string{"GK / Current Affairs"}},
			want:    domain.ProficiencyWeak,
		},
		{
			name:    "strong wins over weak",
			subject: domain.SubjectMath,
			split:   domain.SubjectSplit{Weak: []string{"MATH"}, Strong: []string{"MATH"}},
			want:    domain.ProficiencyStrong,
		},
		{
			name:    "unlisted is average",
			subject: domain.SubjectEnglish,
			split:   domain.SubjectSplit{Weak: []string{"MATH"}, Strong: []string{"GA"}},
			want:    domain.ProficiencyAverage,
		},
		{
			name:    "blank entries ignored",
			subject: domain.SubjectMath,
			split:   domain.SubjectSplit{Weak: []string{"", "  "}},
			want:    domain.ProficiencyAverage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.subject, tt.split))
		})
	}
}

func TestPriorityList(t *testing.T) {
	tests := []struct {
		name string
		weak []string
		want []domain.Subject
	}{
		{
			name: "no weak subjects uses fallback order",
			weak: nil,
			want: []domain.Subject{domain.SubjectMath, domain.SubjectReasoning, domain.SubjectEnglish, domain.SubjectGA},
		},
		{
			name: "weak subjects lead",
			weak: []string{"ENGLISH", "GA"},
			want: []domain.Subject{domain.SubjectEnglish, domain.SubjectGA, domain.SubjectMath, domain.SubjectReasoning},
		},
		{
			name: "non-canonical entries skipped",
			weak: []string{"HISTORY", "reasoning"},
			want: []domain.Subject{domain.SubjectReasoning, domain.SubjectMath, domain.SubjectEnglish, domain.SubjectGA},
		},
		{
			name: "duplicates collapse",
			weak: []string{"MATH", "math", "MATH"},
			want: []domain.Subject{domain.SubjectMath, domain.SubjectReasoning, domain.SubjectEnglish, domain.SubjectGA},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriorityList(tt.weak)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(domain.CanonicalSubjects))
		})
	}
}
