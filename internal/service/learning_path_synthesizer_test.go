package service_test

import (
	"testing"

	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/service"
)

// ── Track selection ───────────────────────────────────────────────────────

func TestTrackFor(t *testing.T) {
	cases := []struct {
		goal string
		want string
	}{
		{"Frontend Developer", service.TrackFrontend},
		{"senior FRONTEND engineer", service.TrackFrontend},
		{"Data Scientist", service.TrackData},
		{"big data engineer", service.TrackData},
		{"Frontend Data Visualization Engineer", service.TrackFrontend},
		{"DevOps Engineer", service.TrackGeneric},
		{"", service.TrackGeneric},
	}
	for _, tc := range cases {
		if got := service.TrackFor(tc.goal); got != tc.want {
			t.Errorf("TrackFor(%q) = %q, want %q", tc.goal, got, tc.want)
		}
	}
}

func TestSynthesizeSteps_TrackContents(t *testing.T) {
	cases := []struct {
		goal       string
		firstIcon  string
		firstTitle string
		lastTitle  string
	}{
		{"Frontend Developer", model.IconLayout, "HTML & CSS Fundamentals", "Advanced Frontend Skills"},
		{"Data Scientist", model.IconDatabase, "Data Fundamentals", "Advanced Data Science"},
		{"DevOps Engineer", model.IconBook, "Foundations", "Specialization"},
	}
	for _, tc := range cases {
		steps := service.SynthesizeSteps(tc.goal)
		if len(steps) != 4 {
			t.Fatalf("SynthesizeSteps(%q) returned %d steps, want 4", tc.goal, len(steps))
		}
		if steps[0].Icon != tc.firstIcon || steps[0].Title != tc.firstTitle {
			t.Errorf("SynthesizeSteps(%q)[0] = {%s %s}, want {%s %s}",
				tc.goal, steps[0].Icon, steps[0].Title, tc.firstIcon, tc.firstTitle)
		}
		if steps[3].Title != tc.lastTitle {
			t.Errorf("SynthesizeSteps(%q)[3].Title = %q, want %q", tc.goal, steps[3].Title, tc.lastTitle)
		}
		for i, step := range steps {
			if len(step.Skills) != 3 {
				t.Errorf("SynthesizeSteps(%q)[%d] has %d skills, want 3", tc.goal, i, len(step.Skills))
			}
		}
	}
}

// Mutating a synthesized path must not leak into later syntheses.
func TestSynthesizeSteps_ReturnsIndependentCopies(t *testing.T) {
	first := service.SynthesizeSteps("Data Analyst")
	first[0].Title = "mutated"
	first[0].Skills[0] = "mutated"

	second := service.SynthesizeSteps("Data Analyst")
	if second[0].Title != "Data Fundamentals" || second[0].Skills[0] != "SQL" {
		t.Errorf("second synthesis was affected by mutation: %+v", second[0])
	}
}

func TestSynthesizePath_TitleAndDescription(t *testing.T) {
	path := service.SynthesizePath("Cloud Architect")
	if path.Title != "Learning Path for Cloud Architect" {
		t.Errorf("Title = %q", path.Title)
	}
	if path.Description != "Personalized learning path for becoming a Cloud Architect" {
		t.Errorf("Description = %q", path.Description)
	}
	if path.ID != 0 || path.CareerGoalID != nil {
		t.Errorf("synthesized path must be unsaved, got id=%d careerGoalId=%v", path.ID, path.CareerGoalID)
	}
}
