package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyping/studyping/pkg/domain"
	"github.com/studyping/studyping/pkg/router/mocks"
)

func setupRouter() (*Router, *mocks.ProfileStoreMock, *mocks.RoadmapProviderMock, *mocks.ResponderMock, *mocks.MessengerMock) {
	store := &mocks.ProfileStoreMock{}
	roadmaps := &mocks.RoadmapProviderMock{}
	responder := &mocks.ResponderMock{}
	messenger := &mocks.MessengerMock{
		SendFunc: func(ctx context.Context, ch domain.Channel, identity, text string, button *domain.LinkButton) error {
			return nil
		},
	}
	r := New(Params{
		Store:       store,
		Roadmaps:    roadmaps,
		Responder:   responder,
		Messenger:   messenger,
		WebURL:      "https://app.example.com",
		TopicsLimit: 20,
	})
	return r, store, roadmaps, responder, messenger
}

func linkedProfile(email, topic string) *domain.Profile {
	return &domain.Profile{
		Email:     email,
		Telegram:  &domain.TelegramLink{ChatID: "12345", Enabled: true},
		Preferred: domain.PreferTelegram,
		Reminder:  domain.ReminderSettings{Frequency: domain.FrequencyDaily, TimeOfDay: "09:00", ActiveTopic: topic},
	}
}

func TestRouter_Start(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"slash command", "/start"},
		{"bare verb", "start"},
		{"spanish greeting", "hola"},
		{"mixed case", "HOLA"},
		{"surrounding spaces", "  /start  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store, _, _, messenger := setupRouter()

			r.Handle(context.Background(), InboundMessage{
				Channel:     domain.ChannelTelegram,
				Identity:    "12345",
				Text:        tt.text,
				DisplayName: "Ana",
			})

			require.Len(t, messenger.SendCalls(), 1)
			assert.Contains(t, messenger.SendCalls()[0].Text, "¡Hola Ana!")
			assert.Contains(t, messenger.SendCalls()[0].Text, "/vincular")
			assert.Empty(t, store.GetByChannelCalls(), "greeting should not touch the store")
		})
	}
}

func TestRouter_StartWithoutName(t *testing.T) {
	r, _, _, _, messenger := setupRouter()

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelWhatsApp, Identity: "+5215512345678", Text: "hola"})

	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "¡Hola estudiante!")
}

func TestRouter_Help(t *testing.T) {
	r, store, _, _, messenger := setupRouter()

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "ayuda"})

	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "Comandos disponibles")
	assert.Empty(t, store.GetByChannelCalls())
}

func TestRouter_LinkEchoesIdentity(t *testing.T) {
	r, store, _, _, messenger := setupRouter()

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "987654321", Text: "/vincular"})

	require.Len(t, messenger.SendCalls(), 1)
	text := messenger.SendCalls()[0].Text
	assert.Contains(t, text, "987654321", "pairing code is the channel identity")
	assert.Contains(t, text, "https://app.example.com/perfil")
	assert.Contains(t, text, "Telegram")
	assert.Empty(t, store.GetByChannelCalls(), "linking happens on the web side")
}

func TestRouter_LinkWhatsAppNamesChannel(t *testing.T) {
	r, _, _, _, messenger := setupRouter()

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelWhatsApp, Identity: "+5215512345678", Text: "vincular"})

	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "WhatsApp")
	assert.Contains(t, messenger.SendCalls()[0].Text, "+5215512345678")
}

func TestRouter_NotLinkedReplies(t *testing.T) {
	tests := []string{"/roadmap", "/listar", "/cambiar Python"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			r, store, roadmaps, _, messenger := setupRouter()
			store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
				return nil, domain.ErrNotFound
			}

			r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: text})

			require.Len(t, messenger.SendCalls(), 1)
			assert.Contains(t, messenger.SendCalls()[0].Text, "no está vinculada")
			assert.Empty(t, store.SetActiveTopicCalls(), "no mutation for unlinked sender")
			assert.Empty(t, roadmaps.GetRoadmapByTopicCalls())
		})
	}
}

func TestRouter_RoadmapWithActiveTopic(t *testing.T) {
	r, store, roadmaps, _, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", "Python"), nil
	}
	roadmaps.GetRoadmapByTopicFunc = func(ctx context.Context, email, topic string) (*domain.Outline, error) {
		return &domain.Outline{Topic: "Python", Sections: []domain.Section{
			{Name: "Fundamentos", Items: []string{"Variables", "Funciones"}},
			{Name: "Avanzado", Items: []string{"Decoradores"}},
		}}, nil
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/roadmap"})

	require.Len(t, roadmaps.GetRoadmapByTopicCalls(), 1)
	assert.Equal(t, "ana@example.com", roadmaps.GetRoadmapByTopicCalls()[0].Email)
	assert.Equal(t, "Python", roadmaps.GetRoadmapByTopicCalls()[0].Topic)

	require.Len(t, messenger.SendCalls(), 1)
	call := messenger.SendCalls()[0]
	assert.Contains(t, call.Text, "📊 Tu Roadmap: Python")
	assert.Contains(t, call.Text, "🔹 Fundamentos")
	assert.Contains(t, call.Text, "   • Decoradores")
	require.NotNil(t, call.Button)
	assert.Equal(t, "🌐 Ver en la web", call.Button.Text)
	assert.Equal(t, "https://app.example.com/roadmaps", call.Button.URL)
}

func TestRouter_RoadmapWithoutActiveTopic(t *testing.T) {
	r, store, roadmaps, _, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", ""), nil
	}
	roadmaps.GetUserRoadmapsFunc = func(ctx context.Context, email string, limit int) ([]domain.TopicInfo, error) {
		return []domain.TopicInfo{{Topic: "Python"}, {Topic: "Docker"}}, nil
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/roadmap"})

	require.Len(t, messenger.SendCalls(), 1)
	text := messenger.SendCalls()[0].Text
	assert.Contains(t, text, "No tienes un roadmap activo")
	assert.Contains(t, text, "Ejemplo: /cambiar Python")
	assert.Empty(t, roadmaps.GetRoadmapByTopicCalls())
}

func TestRouter_RoadmapTopicGone(t *testing.T) {
	r, store, roadmaps, _, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", "Python"), nil
	}
	roadmaps.GetRoadmapByTopicFunc = func(ctx context.Context, email, topic string) (*domain.Outline, error) {
		return nil, domain.ErrNotFound
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/roadmap"})

	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "No encontré el roadmap de \"Python\"")
}

func TestRouter_SwitchTopic(t *testing.T) {
	r, store, roadmaps, _, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", "Python"), nil
	}
	store.SetActiveTopicFunc = func(ctx context.Context, email, topic string) error { return nil }
	roadmaps.GetRoadmapByTopicFunc = func(ctx context.Context, email, topic string) (*domain.Outline, error) {
		return &domain.Outline{Topic: topic}, nil
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/cambiar Machine Learning"})

	// topic casing preserved through resolution and storage
	require.Len(t, roadmaps.GetRoadmapByTopicCalls(), 1)
	assert.Equal(t, "Machine Learning", roadmaps.GetRoadmapByTopicCalls()[0].Topic)
	require.Len(t, store.SetActiveTopicCalls(), 1)
	assert.Equal(t, "ana@example.com", store.SetActiveTopicCalls()[0].Email)
	assert.Equal(t, "Machine Learning", store.SetActiveTopicCalls()[0].Topic)

	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "Tu roadmap activo ahora es: Machine Learning")
}

func TestRouter_SwitchTopicNotFound(t *testing.T) {
	r, store, roadmaps, _, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", "Python"), nil
	}
	roadmaps.GetRoadmapByTopicFunc = func(ctx context.Context, email, topic string) (*domain.Outline, error) {
		return nil, domain.ErrNotFound
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/cambiar Rust"})

	assert.Empty(t, store.SetActiveTopicCalls(), "missing topic must not change the selection")
	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "No encontré ningún roadmap de \"Rust\"")
}

func TestRouter_SwitchTopicUsage(t *testing.T) {
	r, store, _, _, messenger := setupRouter()

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/cambiar"})

	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "/cambiar [tema]")
	assert.Empty(t, store.GetByChannelCalls())
}

func TestRouter_List(t *testing.T) {
	r, store, roadmaps, _, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", "Docker"), nil
	}
	roadmaps.GetUserRoadmapsFunc = func(ctx context.Context, email string, limit int) ([]domain.TopicInfo, error) {
		assert.Equal(t, 20, limit)
		return []domain.TopicInfo{{Topic: "Python"}, {Topic: "Docker"}, {Topic: "Kubernetes"}}, nil
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "listar"})

	require.Len(t, messenger.SendCalls(), 1)
	text := messenger.SendCalls()[0].Text
	assert.Contains(t, text, "Tus Roadmaps (3)")
	assert.Contains(t, text, "🔹 1. Python")
	assert.Contains(t, text, "✅ 2. Docker", "active topic gets the check mark")
	assert.Contains(t, text, "🔹 3. Kubernetes")
}

func TestRouter_ListEmpty(t *testing.T) {
	r, store, roadmaps, _, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", ""), nil
	}
	roadmaps.GetUserRoadmapsFunc = func(ctx context.Context, email string, limit int) ([]domain.TopicInfo, error) {
		return nil, nil
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/listar"})

	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "Aún no tienes roadmaps")
}

func TestRouter_Progress(t *testing.T) {
	r, _, _, _, messenger := setupRouter()

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/progreso"})

	require.Len(t, messenger.SendCalls(), 1)
	assert.Contains(t, messenger.SendCalls()[0].Text, "muy pronto")
}

func TestRouter_QuestionLinkedWithTopic(t *testing.T) {
	r, store, roadmaps, responder, messenger := setupRouter()
	outline := &domain.Outline{Topic: "Python", Sections: []domain.Section{{Name: "Basics", Items: []string{"Variables"}}}}
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", "Python"), nil
	}
	roadmaps.GetRoadmapByTopicFunc = func(ctx context.Context, email, topic string) (*domain.Outline, error) {
		return outline, nil
	}
	responder.AnswerFunc = func(ctx context.Context, question string, o *domain.Outline, strict bool) (string, error) {
		return "Un decorador envuelve una función.", nil
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "¿qué es un decorador?"})

	require.Len(t, responder.AnswerCalls(), 1)
	assert.Equal(t, "¿qué es un decorador?", responder.AnswerCalls()[0].Question)
	assert.Equal(t, outline, responder.AnswerCalls()[0].Outline)
	assert.True(t, responder.AnswerCalls()[0].Strict)

	require.Len(t, messenger.SendCalls(), 2)
	assert.Equal(t, msgThinking, messenger.SendCalls()[0].Text)
	assert.Equal(t, "Un decorador envuelve una función.", messenger.SendCalls()[1].Text, "answer relayed verbatim")
}

func TestRouter_QuestionUnlinked(t *testing.T) {
	r, store, _, responder, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return nil, domain.ErrNotFound
	}
	responder.AnswerFunc = func(ctx context.Context, question string, o *domain.Outline, strict bool) (string, error) {
		assert.Nil(t, o)
		assert.False(t, strict)
		return "Claro, te explico.", nil
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelWhatsApp, Identity: "+5215512345678", Text: "explícame REST"})

	require.Len(t, messenger.SendCalls(), 2)
	assert.Contains(t, messenger.SendCalls()[1].Text, "Claro, te explico.")
	assert.Contains(t, messenger.SendCalls()[1].Text, "Vincula tu cuenta", "unlinked sender gets the linking tip")
}

func TestRouter_QuestionContextUnavailable(t *testing.T) {
	r, store, roadmaps, responder, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return linkedProfile("ana@example.com", "Python"), nil
	}
	roadmaps.GetRoadmapByTopicFunc = func(ctx context.Context, email, topic string) (*domain.Outline, error) {
		return nil, errors.New("service down")
	}
	responder.AnswerFunc = func(ctx context.Context, question string, o *domain.Outline, strict bool) (string, error) {
		assert.Nil(t, o, "fallback to unconstrained answer")
		assert.False(t, strict)
		return "Respuesta general.", nil
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "¿qué es goroutine?"})

	require.Len(t, messenger.SendCalls(), 2)
	assert.Equal(t, "Respuesta general.", messenger.SendCalls()[1].Text)
	assert.NotContains(t, messenger.SendCalls()[1].Text, "Vincula", "linked sender gets no linking tip")
}

func TestRouter_QuestionResponderError(t *testing.T) {
	r, store, _, responder, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return nil, domain.ErrNotFound
	}
	responder.AnswerFunc = func(ctx context.Context, question string, o *domain.Outline, strict bool) (string, error) {
		return "", errors.New("llm request failed")
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "hola mundo cruel"})

	// thinking notice then the apology
	require.Len(t, messenger.SendCalls(), 2)
	assert.Equal(t, msgApology, messenger.SendCalls()[1].Text)
}

func TestRouter_StoreErrorGetsApology(t *testing.T) {
	r, store, _, _, messenger := setupRouter()
	store.GetByChannelFunc = func(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
		return nil, errors.New("database locked")
	}

	r.Handle(context.Background(), InboundMessage{Channel: domain.ChannelTelegram, Identity: "12345", Text: "/roadmap"})

	require.Len(t, messenger.SendCalls(), 1)
	assert.Equal(t, msgApology, messenger.SendCalls()[0].Text)
}
