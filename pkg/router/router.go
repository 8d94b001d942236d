// Package router maps one inbound chat message to exactly one outbound
// reply, applying state transitions to the channel identity store. Every
// branch answers, including the error branch.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/studyping/studyping/pkg/domain"
)

//go:generate moq -out mocks/profile_store.go -pkg mocks -skip-ensure -fmt goimports . ProfileStore
//go:generate moq -out mocks/roadmap_provider.go -pkg mocks -skip-ensure -fmt goimports . RoadmapProvider
//go:generate moq -out mocks/responder.go -pkg mocks -skip-ensure -fmt goimports . Responder
//go:generate moq -out mocks/messenger.go -pkg mocks -skip-ensure -fmt goimports . Messenger

// ProfileStore is the channel identity store as the router sees it
type ProfileStore interface {
	GetByChannel(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error)
	SetActiveTopic(ctx context.Context, email, topic string) error
}

// RoadmapProvider resolves roadmap outlines and topic lists
type RoadmapProvider interface {
	GetRoadmapByTopic(ctx context.Context, email, topic string) (*domain.Outline, error)
	GetUserRoadmaps(ctx context.Context, email string, limit int) ([]domain.TopicInfo, error)
}

// Responder generates free-form answers
type Responder interface {
	Answer(ctx context.Context, question string, outline *domain.Outline, strict bool) (string, error)
}

// Messenger delivers outbound messages on a channel
type Messenger interface {
	Send(ctx context.Context, ch domain.Channel, identity, text string, button *domain.LinkButton) error
}

// InboundMessage is one message received from a channel webhook
type InboundMessage struct {
	Channel     domain.Channel
	Identity    string // chat id or E.164 number, provider prefix stripped
	Text        string
	DisplayName string
}

// Router classifies inbound messages and executes command handlers
type Router struct {
	store       ProfileStore
	roadmaps    RoadmapProvider
	responder   Responder
	messenger   Messenger
	webURL      string
	topicsLimit int
}

// Params holds router dependencies
type Params struct {
	Store       ProfileStore
	Roadmaps    RoadmapProvider
	Responder   Responder
	Messenger   Messenger
	WebURL      string
	TopicsLimit int
}

// New creates a router
func New(p Params) *Router {
	if p.TopicsLimit == 0 {
		p.TopicsLimit = 20
	}
	return &Router{
		store:       p.Store,
		roadmaps:    p.Roadmaps,
		responder:   p.Responder,
		messenger:   p.Messenger,
		webURL:      p.WebURL,
		topicsLimit: p.TopicsLimit,
	}
}

// command verbs, matched case-insensitively. Spanish aliases are the
// product's primary surface, english ones kept for the bot menu.
var (
	startVerbs   = []string{"/start", "start", "hola"}
	helpVerbs    = []string{"/help", "help", "ayuda"}
	linkVerbs    = []string{"/vincular", "vincular", "link"}
	roadmapVerbs = []string{"/roadmap", "roadmap"}
	listVerbs    = []string{"/listar", "listar", "list"}
	progresVerbs = []string{"/progreso", "progreso"}
)

// Handle processes one inbound message. It never fails upward: failures
// are logged and converted into an apology reply so the webhook layer can
// always acknowledge the provider.
func (r *Router) Handle(ctx context.Context, msg InboundMessage) {
	lgr.Printf("[DEBUG] inbound %s message from %q: %q", msg.Channel, msg.Identity, msg.Text)

	if err := r.dispatch(ctx, msg); err != nil {
		lgr.Printf("[WARN] failed to handle %s message from %q: %v", msg.Channel, msg.Identity, err)
		if sendErr := r.reply(ctx, msg, msgApology); sendErr != nil {
			lgr.Printf("[ERROR] failed to deliver apology to %q: %v", msg.Identity, sendErr)
		}
	}
}

// dispatch classifies the message and runs the matching handler,
// first match wins
func (r *Router) dispatch(ctx context.Context, msg InboundMessage) error {
	norm := strings.ToLower(strings.TrimSpace(msg.Text))

	switch {
	case matches(norm, startVerbs):
		return r.handleStart(ctx, msg)
	case matches(norm, helpVerbs):
		return r.handleHelp(ctx, msg)
	case matches(norm, linkVerbs):
		return r.handleLink(ctx, msg)
	case matches(norm, roadmapVerbs):
		return r.handleRoadmap(ctx, msg)
	case matches(norm, listVerbs):
		return r.handleList(ctx, msg)
	case matches(norm, progresVerbs):
		return r.handleProgress(ctx, msg)
	case norm == "/cambiar" || norm == "cambiar":
		return r.reply(ctx, msg, msgSwitchUsage)
	case strings.HasPrefix(norm, "/cambiar ") || strings.HasPrefix(norm, "cambiar "):
		return r.handleSwitchTopic(ctx, msg)
	}

	return r.handleQuestion(ctx, msg)
}

func matches(norm string, verbs []string) bool {
	for _, v := range verbs {
		if norm == v {
			return true
		}
	}
	return false
}

func (r *Router) handleStart(ctx context.Context, msg InboundMessage) error {
	name := msg.DisplayName
	if name == "" {
		name = "estudiante"
	}
	return r.reply(ctx, msg, fmt.Sprintf(msgWelcome, name))
}

func (r *Router) handleHelp(ctx context.Context, msg InboundMessage) error {
	return r.reply(ctx, msg, msgHelp)
}

// handleLink echoes the channel identity back as a pairing code, the
// actual linking happens on the companion web app
func (r *Router) handleLink(ctx context.Context, msg InboundMessage) error {
	channelName := "Telegram"
	if msg.Channel == domain.ChannelWhatsApp {
		channelName = "WhatsApp"
	}
	return r.reply(ctx, msg, fmt.Sprintf(msgLink, msg.Identity, r.webURL, channelName))
}

func (r *Router) handleRoadmap(ctx context.Context, msg InboundMessage) error {
	profile, err := r.linkedProfile(ctx, msg)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return r.reply(ctx, msg, msgNotLinked)
		}
		return fmt.Errorf("lookup profile: %w", err)
	}

	topic := profile.Reminder.ActiveTopic
	if topic == "" {
		// no selection yet, show what can be selected
		return r.sendTopicList(ctx, msg, profile, msgListHintSwitch)
	}

	outline, err := r.roadmaps.GetRoadmapByTopic(ctx, profile.Email, topic)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return r.reply(ctx, msg, fmt.Sprintf(msgTopicGone, topic))
		}
		return fmt.Errorf("fetch roadmap %q: %w", topic, err)
	}

	button := &domain.LinkButton{Text: "🌐 Ver en la web", URL: r.webURL + "/roadmaps"}
	return r.messenger.Send(ctx, msg.Channel, msg.Identity, RenderOutline(outline), button)
}

func (r *Router) handleSwitchTopic(ctx context.Context, msg InboundMessage) error {
	// keep the topic's original casing, drop only the verb
	fields := strings.Fields(msg.Text)
	newTopic := strings.Join(fields[1:], " ")

	profile, err := r.linkedProfile(ctx, msg)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return r.reply(ctx, msg, msgNotLinked)
		}
		return fmt.Errorf("lookup profile: %w", err)
	}

	// the topic must resolve before the selection changes
	if _, err := r.roadmaps.GetRoadmapByTopic(ctx, profile.Email, newTopic); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return r.reply(ctx, msg, fmt.Sprintf(msgTopicNotFound, newTopic))
		}
		return fmt.Errorf("resolve topic %q: %w", newTopic, err)
	}

	if err := r.store.SetActiveTopic(ctx, profile.Email, newTopic); err != nil {
		return fmt.Errorf("set active topic: %w", err)
	}

	return r.reply(ctx, msg, fmt.Sprintf(msgTopicSwitched, newTopic))
}

func (r *Router) handleList(ctx context.Context, msg InboundMessage) error {
	profile, err := r.linkedProfile(ctx, msg)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return r.reply(ctx, msg, msgNotLinked)
		}
		return fmt.Errorf("lookup profile: %w", err)
	}

	return r.sendTopicList(ctx, msg, profile, msgListHint)
}

func (r *Router) handleProgress(ctx context.Context, msg InboundMessage) error {
	return r.reply(ctx, msg, fmt.Sprintf(msgProgress, r.webURL))
}

// handleQuestion answers free-form text through the LLM, constrained to
// the active topic when the sender is linked and has one selected
func (r *Router) handleQuestion(ctx context.Context, msg InboundMessage) error {
	if err := r.reply(ctx, msg, msgThinking); err != nil {
		// pre-reply failure is not fatal, the answer may still go through
		lgr.Printf("[WARN] failed to send thinking notice to %q: %v", msg.Identity, err)
	}

	profile, err := r.store.GetByChannel(ctx, msg.Channel, msg.Identity)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("lookup profile: %w", err)
	}

	var outline *domain.Outline
	if profile != nil && profile.Reminder.ActiveTopic != "" {
		outline, err = r.roadmaps.GetRoadmapByTopic(ctx, profile.Email, profile.Reminder.ActiveTopic)
		if err != nil {
			// degrade to an unconstrained answer, the question still deserves one
			lgr.Printf("[WARN] roadmap context unavailable for %s: %v", profile.Email, err)
			outline = nil
		}
	}

	answer, err := r.responder.Answer(ctx, msg.Text, outline, outline != nil)
	if err != nil {
		return fmt.Errorf("generate answer: %w", err)
	}

	if profile == nil {
		answer += msgLinkTip
	}

	return r.reply(ctx, msg, answer)
}

// linkedProfile resolves the sender to a linked application identity,
// domain.ErrNotFound when the channel identity is unknown
func (r *Router) linkedProfile(ctx context.Context, msg InboundMessage) (*domain.Profile, error) {
	profile, err := r.store.GetByChannel(ctx, msg.Channel, msg.Identity)
	if err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (r *Router) sendTopicList(ctx context.Context, msg InboundMessage, profile *domain.Profile, hint string) error {
	topics, err := r.roadmaps.GetUserRoadmaps(ctx, profile.Email, r.topicsLimit)
	if err != nil {
		return fmt.Errorf("list roadmaps: %w", err)
	}

	if len(topics) == 0 {
		return r.reply(ctx, msg, fmt.Sprintf(msgNoRoadmaps, r.webURL))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 Tus Roadmaps (%d):\n\n", len(topics))
	for i, topic := range topics {
		icon := "🔹"
		if topic.Topic == profile.Reminder.ActiveTopic {
			icon = "✅"
		}
		fmt.Fprintf(&sb, "%s %d. %s\n", icon, i+1, topic.Topic)
	}
	sb.WriteString(hint)
	if hint == msgListHintSwitch && len(topics) > 0 {
		fmt.Fprintf(&sb, "\nEjemplo: /cambiar %s", topics[0].Topic)
	}

	return r.reply(ctx, msg, sb.String())
}

func (r *Router) reply(ctx context.Context, msg InboundMessage, text string) error {
	return r.messenger.Send(ctx, msg.Channel, msg.Identity, text, nil)
}
