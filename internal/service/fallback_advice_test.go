package service

import (
	"strings"
	"testing"

	"career_advisor_backend/internal/model"
)

// ── Experience tiers ──────────────────────────────────────────────────────

func TestClassifyExperience(t *testing.T) {
	cases := []struct {
		level string
		want  experienceTier
	}{
		{"beginner", tierBeginner},
		{"entry level", tierBeginner},
		{"junior developer", tierBeginner},
		{"intermediate", tierIntermediate},
		{"mid-level", tierIntermediate},
		{"senior", tierAdvanced},
		{"expert", tierAdvanced},
		{"", tierAdvanced},
		{"0-1 years", tierBeginner},
		{"1-2 years", tierBeginner},
		{"2-3 years", tierIntermediate},
		{"3-5 years", tierIntermediate},
		{"5+ years", tierAdvanced},
		{"10 years", tierAdvanced},
	}
	for _, tc := range cases {
		if got := classifyExperience(tc.level); got != tc.want {
			t.Errorf("classifyExperience(%q) = %s, want %s", tc.level, got, tc.want)
		}
	}
}

// Keyword rules win over year ranges.
func TestClassifyExperience_KeywordBeforeYears(t *testing.T) {
	if got := classifyExperience("junior, 4 years"); got != tierBeginner {
		t.Errorf("classifyExperience(junior, 4 years) = %s, want beginner", got)
	}
}

// ── Fallback text ─────────────────────────────────────────────────────────

func goalFor(goal, skills, level string) model.CareerGoal {
	return model.CareerGoal{ID: 1, Goal: goal, Skills: skills, ExperienceLevel: level}
}

func TestFallbackAdvice_GeneralBeginnerFromYears(t *testing.T) {
	got := FallbackAdvice(goalFor("Data Scientist", "Python, SQL", "0-1 years"), nil)

	wantPrefix := "Based on your goal to become a data scientist with skills in Python, SQL and 0-1 years experience: For someone just starting in data scientist,"
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("FallbackAdvice prefix mismatch\n got: %s\nwant: %s...", got, wantPrefix)
	}
	wantSuffix := "Focus on strengthening your skills in Python, SQL through practical projects and continuous learning."
	if !strings.HasSuffix(got, wantSuffix) {
		t.Errorf("FallbackAdvice suffix mismatch\n got: %s\nwant: ...%s", got, wantSuffix)
	}
}

func TestFallbackAdvice_Questions(t *testing.T) {
	goal := goalFor("Frontend Developer", "HTML, CSS", "Intermediate")

	cases := []struct {
		name     string
		question string
		want     []string
	}{
		{
			name:     "certification",
			question: "Which certifications should I get?",
			want: []string{
				"Regarding your question about Which certifications should I get?, certifications can significantly boost your credentials in frontend developer.",
				"With your intermediate experience in frontend developer",
			},
		},
		{
			name:     "course keyword",
			question: "Is an online Course worth it?",
			want:     []string{"certifications can significantly boost your credentials"},
		},
		{
			name:     "salary",
			question: "What salary can I expect?",
			want: []string{
				"About your question on What salary can I expect?, salary in frontend developer varies",
				"focus on in-demand skills like HTML, CSS",
			},
		},
		{
			name:     "compensation",
			question: "How is compensation structured?",
			want:     []string{"About your question on How is compensation structured?"},
		},
		{
			name:     "interview",
			question: "How do I prepare for an interview?",
			want: []string{
				"make sure your resume highlights your experience with HTML, CSS.",
				"In interviews for frontend developer positions",
			},
		},
		{
			name:     "generic",
			question: "Should I learn TypeScript?",
			want: []string{
				`Regarding your question about "Should I learn TypeScript?" for your career as a frontend developer:`,
				"Additionally, continue to develop your skills in HTML, CSS as these are crucial for success in this field.",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.question
			got := FallbackAdvice(goal, &q)
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("FallbackAdvice(%q) missing %q\n got: %s", tc.question, w, got)
				}
			}
		})
	}
}

// Certification wins when a question matches several topics.
func TestFallbackAdvice_QuestionRuleOrder(t *testing.T) {
	q := "Does a certification raise my salary?"
	got := FallbackAdvice(goalFor("DevOps Engineer", "Docker", "senior"), &q)
	if !strings.Contains(got, "certifications can significantly boost") {
		t.Errorf("expected certification template, got: %s", got)
	}
	if !strings.Contains(got, "As an experienced professional in devops engineer") {
		t.Errorf("expected advanced base advice, got: %s", got)
	}
}

func TestFallbackAdvice_IsDeterministic(t *testing.T) {
	goal := goalFor("Backend Developer", "Go", "2-3 years")
	q := "What next?"
	if FallbackAdvice(goal, &q) != FallbackAdvice(goal, &q) {
		t.Error("FallbackAdvice must return the same text for the same input")
	}
	if FallbackAdvice(goal, nil) == "" {
		t.Error("FallbackAdvice returned empty text")
	}
}
