// Package llm generates chat answers and reminder texts through an
// OpenAI-compatible endpoint (Groq in production).
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/studyping/studyping/pkg/config"
	"github.com/studyping/studyping/pkg/domain"
)

// Responder uses an LLM to answer student questions and write reminders
type Responder struct {
	client *openai.Client
	config config.LLMConfig
}

// NewResponder creates a new LLM responder
func NewResponder(cfg config.LLMConfig) *Responder {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	// DefaultConfig's http client has no timeout, a stalled endpoint
	// would hold a request forever
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Responder{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

const systemPrompt = `Eres un tutor educativo claro, conciso y motivador. ` +
	`Respondes siempre en el idioma del estudiante y en máximo 500 caracteres.`

// Answer generates a reply to a free-form question. With an outline and
// strict=true the model must refuse questions outside the topic's scope
// using a fixed refusal template naming the topic.
func (r *Responder) Answer(ctx context.Context, question string, outline *domain.Outline, strict bool) (string, error) {
	var prompt string
	switch {
	case outline != nil && strict:
		prompt = fmt.Sprintf(`Eres un tutor educativo especializado EXCLUSIVAMENTE en "%[1]s".

CONTEXTO DEL ROADMAP:
%[2]s

IMPORTANTE:
- SOLO puedes responder preguntas relacionadas con "%[1]s" y los subtemas del roadmap.
- Si la pregunta NO está relacionada con el roadmap, responde: "Lo siento, solo puedo ayudarte con temas sobre %[1]s. ¿Tienes alguna pregunta al respecto?"
- NO inventes información fuera del contexto del roadmap.

PREGUNTA DEL ESTUDIANTE: %[3]s

Respuesta (máximo 500 caracteres):`, outline.Topic, renderContext(outline), question)

	case outline != nil:
		prompt = fmt.Sprintf(`El estudiante está aprendiendo sobre "%s".

CONTEXTO DEL ROADMAP:
%s

PREGUNTA DEL ESTUDIANTE: %s

Si la pregunta está relacionada con el tema, responde con base en el roadmap; si es general, responde de manera educativa. Relaciona la respuesta con los subtemas cuando puedas.`,
			outline.Topic, renderContext(outline), question)

	default:
		prompt = fmt.Sprintf("PREGUNTA: %s\n\nResponde de manera clara, concisa y educativa.", question)
	}

	return r.complete(ctx, prompt)
}

// Reminder generates a short motivational study reminder suggesting what
// to review today from the user's active roadmap
func (r *Responder) Reminder(ctx context.Context, outline *domain.Outline) (string, error) {
	prompt := fmt.Sprintf(`El estudiante tiene pendiente su roadmap de "%s":

%s

Escribe un recordatorio de estudio breve y motivador (máximo 300 caracteres) sugiriendo qué subtema concreto del roadmap repasar hoy. No uses saludos genéricos.`,
		outline.Topic, renderContext(outline))

	return r.complete(ctx, prompt)
}

func (r *Responder) complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       r.config.Model,
		Temperature: float32(r.config.Temperature),
		MaxTokens:   r.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// renderContext flattens an outline for a prompt, one section per line
func renderContext(outline *domain.Outline) string {
	var sb strings.Builder
	for _, section := range outline.Sections {
		sb.WriteString("- ")
		sb.WriteString(section.Name)
		if len(section.Items) > 0 {
			sb.WriteString(": ")
			sb.WriteString(strings.Join(section.Items, ", "))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
