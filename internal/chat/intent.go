// Package chat implements the guidance surface: messages are classified into
// a small set of intents by keyword matching, and a Responder produces the
// reply. The local responder is always available; the model-backed responder
// degrades to it whenever the collaborator fails.
package chat

import "strings"

// Intent is the tagged classification of an inbound message. Unknown is the
// explicit fallback variant, not an error.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentShelter   Intent = "shelter"
	IntentFood      Intent = "food"
	IntentHealth    Intent = "health"
	IntentJob       Intent = "job"
	IntentEducation Intent = "education"
	IntentRehab     Intent = "rehab"
	IntentLegal     Intent = "legal"
	IntentResume    Intent = "resume"
	IntentUnknown   Intent = "unknown"
)

var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentGreeting, []string{"hello", "hi ", "hey", "good morning", "good afternoon"}},
	{IntentResume, []string{"resume", "cv "}},
	{IntentShelter, []string{"shelter", "housing", "homeless", "place to stay", "sleep"}},
	{IntentFood, []string{"food", "meal", "hungry", "pantry", "eat"}},
	{IntentHealth, []string{"health", "clinic", "doctor", "medical", "sick"}},
	{IntentJob, []string{"job", "work", "employment", "hiring", "career"}},
	{IntentEducation, []string{"education", "school", "class", "training", "ged"}},
	{IntentRehab, []string{"rehab", "recovery", "addiction", "substance"}},
	{IntentLegal, []string{"legal", "lawyer", "attorney", "court", "rights"}},
}

// Classify matches the message against the keyword table in priority order.
func Classify(message string) Intent {
	m := " " + strings.ToLower(strings.TrimSpace(message)) + " "
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(m, kw) {
				return entry.intent
			}
		}
	}

	return IntentUnknown
}

// ResourceType maps a directory intent onto a resource category; non-directory
// intents map to the empty string.
func (i Intent) ResourceType() string {
	switch i {
	case IntentShelter, IntentFood, IntentHealth, IntentJob, IntentEducation, IntentRehab, IntentLegal:
		return string(i)
	default:
		return ""
	}
}
