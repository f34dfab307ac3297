package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/pathfinderhq/pathfinder/pkg/models"
	"github.com/pathfinderhq/pathfinder/pkg/repository/mock"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"Hello there", IntentGreeting},
		{"hi ", IntentGreeting},
		{"I need a place to stay tonight", IntentShelter},
		{"where can I find housing", IntentShelter},
		{"I'm hungry", IntentFood},
		{"is there a food pantry nearby", IntentFood},
		{"I need to see a doctor", IntentHealth},
		{"looking for work", IntentJob},
		{"any companies hiring?", IntentJob},
		{"I want to finish my GED", IntentEducation},
		{"help with addiction", IntentRehab},
		{"I need a lawyer", IntentLegal},
		{"help me write a resume", IntentResume},
		{"what's the weather", IntentUnknown},
		{"", IntentUnknown},
		{"   ", IntentUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.message); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// resume outranks job even though both keyword sets match
	if got := Classify("help with my resume for a job"); got != IntentResume {
		t.Errorf("Classify() = %q, want %q", got, IntentResume)
	}
}

func TestIntentResourceType(t *testing.T) {
	if got := IntentShelter.ResourceType(); got != "shelter" {
		t.Errorf("ResourceType() = %q, want shelter", got)
	}
	for _, in := range []Intent{IntentGreeting, IntentResume, IntentUnknown} {
		if got := in.ResourceType(); got != "" {
			t.Errorf("%s.ResourceType() = %q, want empty", in, got)
		}
	}
}

func TestLocalResponderCanned(t *testing.T) {
	r := &LocalResponder{}

	reply, err := r.Respond(context.Background(), IntentGreeting, "hello")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", reply.Source, SourceFallback)
	}
	if reply.Intent != IntentGreeting {
		t.Errorf("Intent = %q, want greeting", reply.Intent)
	}
	if reply.Text == "" {
		t.Error("Respond() returned empty text")
	}
}

func TestLocalResponderUnknownIntentFallsBack(t *testing.T) {
	r := &LocalResponder{}

	reply, err := r.Respond(context.Background(), Intent("bogus"), "???")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply.Text != cannedReplies[IntentUnknown] {
		t.Errorf("Text = %q, want unknown-intent reply", reply.Text)
	}
}

func TestLocalResponderIncludesResources(t *testing.T) {
	repo := &mock.ResourceRepo{}
	for _, name := range []string{"Hope House", "Night Haven", "Safe Harbor", "Fourth Shelter"} {
		if _, err := repo.CreateResource(context.Background(), &models.Resource{
			Name: name, Type: "shelter", Address: "123 Elm St", Phone: "603-555-0100", IsActive: true,
		}); err != nil {
			t.Fatalf("seed resource: %v", err)
		}
	}

	r := &LocalResponder{Resources: repo}
	reply, err := r.Respond(context.Background(), IntentShelter, "I need shelter")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.Contains(reply.Text, "Hope House") {
		t.Errorf("reply %q should list matching resources", reply.Text)
	}
	if !strings.Contains(reply.Text, "603-555-0100") {
		t.Errorf("reply %q should carry the phone number", reply.Text)
	}
	if strings.Contains(reply.Text, "Fourth Shelter") {
		t.Errorf("reply %q should cap the list at three", reply.Text)
	}
}

func TestLocalResponderToleratesRepoFailure(t *testing.T) {
	repo := &mock.ResourceRepo{Err: context.DeadlineExceeded}

	r := &LocalResponder{Resources: repo}
	reply, err := r.Respond(context.Background(), IntentFood, "food")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply.Text != cannedReplies[IntentFood] {
		t.Errorf("Text = %q, want plain canned reply when lookup fails", reply.Text)
	}
}

func TestModelResponderNilClientDegrades(t *testing.T) {
	r := &ModelResponder{Fallback: &LocalResponder{}}

	reply, err := r.Respond(context.Background(), IntentHealth, "I feel sick")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply.Source != SourceFallback {
		t.Errorf("Source = %q, want fallback with no client", reply.Source)
	}
}

func TestBuildResumePrompt(t *testing.T) {
	in := models.ResumeInput{
		Name:        "Jordan Reyes",
		ContactInfo: &models.ResumeContact{Email: "jordan@example.org", Location: "Manchester, NH"},
		Summary:     "Line cook with five years of experience.",
		Experience: []models.ResumeJobEntry{
			{Position: "Line Cook", Company: "Elm Street Diner", StartDate: "2019", Description: "Prepared meals."},
		},
		Education: []models.ResumeSchool{{Degree: "GED", Institution: "Adult Learning Center", Year: "2018"}},
		Skills:    []string{"food prep", "sanitation"},
	}

	prompt := BuildResumePrompt(in)
	for _, want := range []string{
		"Jordan Reyes",
		"jordan@example.org",
		"Line Cook at Elm Street Diner",
		"(2019 - Present)",
		"GED from Adult Learning Center",
		"food prep, sanitation",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFallbackResume(t *testing.T) {
	in := models.ResumeInput{
		Name:        "Jordan Reyes",
		ContactInfo: &models.ResumeContact{Email: "jordan@example.org", Phone: "603-555-0101"},
		Summary:     "Reliable worker.",
		Skills:      []string{"forklift"},
	}

	out := FallbackResume(in)
	if !strings.HasPrefix(out, "JORDAN REYES\n") {
		t.Errorf("resume should open with the uppercased name, got %q", out)
	}
	if !strings.Contains(out, "jordan@example.org | 603-555-0101") {
		t.Errorf("resume missing joined contact line: %q", out)
	}
	for _, section := range []string{"SUMMARY", "SKILLS"} {
		if !strings.Contains(out, section) {
			t.Errorf("resume missing %s section", section)
		}
	}
	if strings.Contains(out, "EXPERIENCE") {
		t.Error("resume should omit empty experience section")
	}
}
