package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pathfinderhq/pathfinder/pkg/models"
	"github.com/pathfinderhq/pathfinder/pkg/ollama"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

// Reply is the outcome of answering a chat message. Source reports whether
// the text came from the model or the local fallback.
type Reply struct {
	Text   string `json:"reply"`
	Intent Intent `json:"intent"`
	Source string `json:"source"`
}

const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Responder answers a classified chat message.
type Responder interface {
	Respond(ctx context.Context, intent Intent, message string) (Reply, error)
}

// LocalResponder is the canned, always-available path. For directory intents
// it folds a few matching active resources into the reply.
type LocalResponder struct {
	Resources repository.ResourceRepo
}

var cannedReplies = map[Intent]string{
	IntentGreeting:  "Hello! I can help you find shelters, food, health services, jobs and more. What are you looking for?",
	IntentResume:    "I can help you put a resume together. Use the resume builder and I'll format your experience, education and skills into a professional document.",
	IntentShelter:   "Here are shelter and housing services that may help.",
	IntentFood:      "Here are food and meal services that may help.",
	IntentHealth:    "Here are health services that may help.",
	IntentJob:       "Here are employment services that may help. You can also browse the job board for current openings.",
	IntentEducation: "Here are education and training services that may help.",
	IntentRehab:     "Here are recovery services that may help.",
	IntentLegal:     "Here are legal aid services that may help.",
	IntentUnknown:   "I'm not sure what you're looking for. Try asking about shelter, food, health care, jobs, education, recovery or legal help.",
}

func (r *LocalResponder) Respond(ctx context.Context, intent Intent, message string) (Reply, error) {
	text := cannedReplies[intent]
	if text == "" {
		text = cannedReplies[IntentUnknown]
	}

	if kind := intent.ResourceType(); kind != "" && r.Resources != nil {
		items, err := r.Resources.ListResources(ctx, repository.ListFilter{Type: kind, Limit: 3})
		if err == nil && len(items) > 0 {
			text += "\n\n" + formatResources(items)
		}
	}

	return Reply{Text: text, Intent: intent, Source: SourceFallback}, nil
}

func formatResources(items []models.Resource) string {
	var sb strings.Builder
	for i, res := range items {
		fmt.Fprintf(&sb, "%d. %s - %s", i+1, res.Name, res.Address)
		if res.Phone != "" {
			fmt.Fprintf(&sb, " (%s)", res.Phone)
		}
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

const chatPromptTemplate = `You are a helpful assistant for a community resource directory serving people
looking for shelter, food, health care, jobs, education, recovery programs and
legal aid. The user's message was classified as "{{.Intent}}".

User message: {{.Message}}

Reply in a short, warm, practical tone. Point the user toward the relevant
kind of local service. Do not invent specific organizations, addresses or
phone numbers.`

// ModelResponder renders a prompt and asks the collaborator. Any failure
// degrades to the local responder; the caller never sees a collaborator error.
type ModelResponder struct {
	Client   *ollama.Client
	Model    string
	Fallback *LocalResponder
	Logger   *slog.Logger
}

func (r *ModelResponder) Respond(ctx context.Context, intent Intent, message string) (Reply, error) {
	if r.Client == nil {
		return r.Fallback.Respond(ctx, intent, message)
	}

	prompt, err := ollama.RenderTemplate(chatPromptTemplate, map[string]any{
		"Intent":  string(intent),
		"Message": message,
	})
	if err != nil {
		return r.Fallback.Respond(ctx, intent, message)
	}

	text, err := r.Client.Generate(ctx, r.Model, prompt, ollama.GenerateOptions{Temperature: 0.7, MaxTokens: 1000})
	if err != nil || strings.TrimSpace(text) == "" {
		if r.Logger != nil {
			r.Logger.Warn("chat: collaborator unavailable, using fallback", slog.Any("err", err))
		}
		return r.Fallback.Respond(ctx, intent, message)
	}

	return Reply{Text: strings.TrimSpace(text), Intent: intent, Source: SourceModel}, nil
}
