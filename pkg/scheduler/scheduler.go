// Package scheduler delivers study reminders. A per-minute pass matches
// profiles whose frequency policy and preferred time are due, a slower
// six-hour pass re-scans profiles on the adaptive policy.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/studyping/studyping/pkg/domain"
)

//go:generate moq -out mocks/profile_store.go -pkg mocks -skip-ensure -fmt goimports . ProfileStore
//go:generate moq -out mocks/roadmap_provider.go -pkg mocks -skip-ensure -fmt goimports . RoadmapProvider
//go:generate moq -out mocks/reminder_writer.go -pkg mocks -skip-ensure -fmt goimports . ReminderWriter
//go:generate moq -out mocks/messenger.go -pkg mocks -skip-ensure -fmt goimports . Messenger

// ProfileStore lists profiles eligible for reminders
type ProfileStore interface {
	ListReminderCandidates(ctx context.Context) ([]domain.Profile, error)
}

// RoadmapProvider resolves the active roadmap outline for a profile
type RoadmapProvider interface {
	GetRoadmapByTopic(ctx context.Context, email, topic string) (*domain.Outline, error)
}

// ReminderWriter generates the motivational reminder body
type ReminderWriter interface {
	Reminder(ctx context.Context, outline *domain.Outline) (string, error)
}

// Messenger delivers outbound messages on a channel
type Messenger interface {
	Send(ctx context.Context, ch domain.Channel, identity, text string, button *domain.LinkButton) error
}

// Config holds scheduler configuration
type Config struct {
	SendDelay time.Duration // pause between users within one pass
	Location  *time.Location
}

// Scheduler runs the reminder passes on cron schedules
type Scheduler struct {
	store     ProfileStore
	roadmaps  RoadmapProvider
	writer    ReminderWriter
	messenger Messenger
	sendDelay time.Duration
	loc       *time.Location

	cron    *cron.Cron
	started bool
	mu      sync.Mutex

	// dedup guards against double delivery within the same minute slot,
	// keys are email|day|slot, reset on day rollover
	sent     map[string]struct{}
	sentDay  int
	dedupeMu sync.Mutex
}

// NewScheduler creates a scheduler, passes are not running until Start
func NewScheduler(store ProfileStore, roadmaps RoadmapProvider, writer ReminderWriter, messenger Messenger, cfg Config) *Scheduler {
	if cfg.SendDelay == 0 {
		cfg.SendDelay = time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Scheduler{
		store:     store,
		roadmaps:  roadmaps,
		writer:    writer,
		messenger: messenger,
		sendDelay: cfg.SendDelay,
		loc:       cfg.Location,
		sent:      map[string]struct{}{},
	}
}

// Start registers the cron entries and begins ticking. Calling Start on a
// running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		lgr.Printf("[WARN] scheduler already started, ignoring")
		return nil
	}

	s.cron = cron.New(cron.WithLocation(s.loc))

	if _, err := s.cron.AddFunc("* * * * *", func() { s.RunDuePass(ctx, time.Now().In(s.loc)) }); err != nil {
		return fmt.Errorf("register due pass: %w", err)
	}
	if _, err := s.cron.AddFunc("0 */6 * * *", func() { s.RunAdaptivePass(ctx, time.Now().In(s.loc)) }); err != nil {
		return fmt.Errorf("register adaptive pass: %w", err)
	}

	s.cron.Start()
	s.started = true
	lgr.Printf("[INFO] reminder scheduler started, send delay %v", s.sendDelay)
	return nil
}

// Stop halts the cron loop and waits for a running pass to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	lgr.Printf("[INFO] stopping reminder scheduler...")
	<-s.cron.Stop().Done()
	s.started = false
	lgr.Printf("[INFO] reminder scheduler stopped")
}

// RunDuePass sends reminders to every profile whose policy makes the given
// minute due. One profile failing never aborts the pass.
func (s *Scheduler) RunDuePass(ctx context.Context, now time.Time) {
	profiles, err := s.store.ListReminderCandidates(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list reminder candidates: %v", err)
		return
	}

	delivered := 0
	for _, profile := range profiles {
		if !dueAt(profile.Reminder, now) {
			continue
		}
		if !s.claim(profile.Email, now, now.Format("15:04")) {
			continue
		}

		if delivered > 0 {
			// spread the sends, the providers rate limit
			time.Sleep(s.sendDelay)
		}

		if err := s.remind(ctx, profile); err != nil {
			lgr.Printf("[WARN] failed to remind %s: %v", profile.Email, err)
			continue
		}
		delivered++
	}

	if delivered > 0 {
		lgr.Printf("[INFO] reminder pass delivered %d of %d candidates", delivered, len(profiles))
	}
}

// RunAdaptivePass gives profiles on the adaptive frequency an extra nudge
// outside their fixed slot, at most once per six-hour window.
func (s *Scheduler) RunAdaptivePass(ctx context.Context, now time.Time) {
	profiles, err := s.store.ListReminderCandidates(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list reminder candidates: %v", err)
		return
	}

	delivered := 0
	for _, profile := range profiles {
		if profile.Reminder.Frequency != domain.FrequencyIntelligent {
			continue
		}
		if !s.claim(profile.Email, now, fmt.Sprintf("rescan:%02d", now.Hour())) {
			continue
		}

		if delivered > 0 {
			time.Sleep(s.sendDelay)
		}

		if err := s.remind(ctx, profile); err != nil {
			lgr.Printf("[WARN] failed to remind %s on adaptive pass: %v", profile.Email, err)
			continue
		}
		delivered++
	}

	if delivered > 0 {
		lgr.Printf("[INFO] adaptive pass delivered %d reminders", delivered)
	}
}

// dueAt reports whether the reminder settings fire at the given minute
func dueAt(r domain.ReminderSettings, now time.Time) bool {
	if now.Format("15:04") != r.TimeOfDay {
		return false
	}

	switch r.Frequency {
	case domain.FrequencyDaily, domain.FrequencyIntelligent:
		// adaptive profiles keep their fixed daily slot, the six-hour
		// pass only adds to it
		return true
	case domain.FrequencyEvery2Days:
		// alternating-day policy keyed on the calendar day, not a
		// rolling 48h window
		return now.Day()%2 == 0
	case domain.FrequencyWeekly:
		return now.Weekday() == time.Monday
	default:
		return false
	}
}

// claim marks the slot as sent, false when it was already taken. The map
// resets on day rollover so it never grows past one day of slots.
func (s *Scheduler) claim(email string, now time.Time, slot string) bool {
	s.dedupeMu.Lock()
	defer s.dedupeMu.Unlock()

	if now.Day() != s.sentDay {
		s.sent = map[string]struct{}{}
		s.sentDay = now.Day()
	}

	key := fmt.Sprintf("%s|%d|%s", email, now.Day(), slot)
	if _, taken := s.sent[key]; taken {
		return false
	}
	s.sent[key] = struct{}{}
	return true
}

// remind builds and delivers one reminder to every enabled channel the
// profile prefers
func (s *Scheduler) remind(ctx context.Context, profile domain.Profile) error {
	topic := profile.Reminder.ActiveTopic

	outline, err := s.roadmaps.GetRoadmapByTopic(ctx, profile.Email, topic)
	if err != nil {
		// a generic reminder still beats silence
		lgr.Printf("[WARN] roadmap %q unavailable for %s: %v", topic, profile.Email, err)
		outline = &domain.Outline{Topic: topic}
	}

	body, err := s.writer.Reminder(ctx, outline)
	if err != nil {
		return fmt.Errorf("generate reminder: %w", err)
	}

	text := fmt.Sprintf("🎯 *Recordatorio de Estudio*\n\n%s\n\n📚 Tu roadmap: %s\n💪 ¡Tú puedes!", body, topic)

	sent := 0
	for _, ch := range []domain.Channel{domain.ChannelTelegram, domain.ChannelWhatsApp} {
		if !profile.Preferred.Includes(ch) || !profile.ChannelEnabled(ch) {
			continue
		}
		if err := s.messenger.Send(ctx, ch, profile.Identity(ch), text, nil); err != nil {
			lgr.Printf("[WARN] failed to send %s reminder to %s: %v", ch, profile.Email, err)
			continue
		}
		sent++
	}

	if sent == 0 {
		return fmt.Errorf("no channel accepted the reminder for %s", profile.Email)
	}

	lgr.Printf("[DEBUG] reminder for %s delivered on %d channel(s)", profile.Email, sent)
	return nil
}
