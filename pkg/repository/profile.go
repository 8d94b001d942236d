package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/studyping/studyping/pkg/domain"
)

// ProfileRepository handles the channel identity store. Every mutation is a
// single-statement read-modify-write keyed by email, profiles are created
// on first link (upsert) and only removed by administrative cleanup.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// dbProfile is the sqlite row shape for a profile
type dbProfile struct {
	Email             string         `db:"email"`
	TelegramChatID    sql.NullString `db:"telegram_chat_id"`
	TelegramEnabled   bool           `db:"telegram_enabled"`
	WhatsAppNumber    sql.NullString `db:"whatsapp_number"`
	WhatsAppEnabled   bool           `db:"whatsapp_enabled"`
	PreferredChannel  string         `db:"preferred_channel"`
	ReminderFrequency string         `db:"reminder_frequency"`
	ReminderTime      string         `db:"reminder_time"`
	ActiveTopic       string         `db:"active_topic"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (r *ProfileRepository) toDomain(p *dbProfile) *domain.Profile {
	res := &domain.Profile{
		Email:     p.Email,
		Preferred: domain.PreferredChannel(p.PreferredChannel),
		Reminder: domain.ReminderSettings{
			Frequency:   domain.Frequency(p.ReminderFrequency),
			TimeOfDay:   p.ReminderTime,
			ActiveTopic: p.ActiveTopic,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.TelegramChatID.Valid && p.TelegramChatID.String != "" {
		res.Telegram = &domain.TelegramLink{ChatID: p.TelegramChatID.String, Enabled: p.TelegramEnabled}
	}
	if p.WhatsAppNumber.Valid && p.WhatsAppNumber.String != "" {
		res.WhatsApp = &domain.WhatsAppLink{Number: p.WhatsAppNumber.String, Enabled: p.WhatsAppEnabled}
	}
	return res
}

// GetByEmail retrieves a profile by application identity
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var p dbProfile
	err := r.db.GetContext(ctx, &p, "SELECT * FROM profiles WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile by email: %w", err)
	}
	return r.toDomain(&p), nil
}

// GetByChannel retrieves a profile by reverse lookup on a channel identity
func (r *ProfileRepository) GetByChannel(ctx context.Context, ch domain.Channel, identity string) (*domain.Profile, error) {
	var column string
	switch ch {
	case domain.ChannelTelegram:
		column = "telegram_chat_id"
	case domain.ChannelWhatsApp:
		column = "whatsapp_number"
	default:
		return nil, fmt.Errorf("unknown channel %q", ch)
	}

	var p dbProfile
	err := r.db.GetContext(ctx, &p, fmt.Sprintf("SELECT * FROM profiles WHERE %s = ?", column), identity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile by %s: %w", ch, err)
	}
	return r.toDomain(&p), nil
}

// LinkTelegram binds a Telegram chat to the given email, creating the
// profile if needed. A chat id already bound to a different email is
// rejected with domain.ErrConflict, never repointed.
func (r *ProfileRepository) LinkTelegram(ctx context.Context, email, chatID string) error {
	return r.linkChannel(ctx, email, chatID, "telegram_chat_id", "telegram_enabled", string(domain.PreferTelegram))
}

// LinkWhatsApp binds a WhatsApp number to the given email, creating the
// profile if needed. Same conflict rule as LinkTelegram.
func (r *ProfileRepository) LinkWhatsApp(ctx context.Context, email, number string) error {
	return r.linkChannel(ctx, email, number, "whatsapp_number", "whatsapp_enabled", string(domain.PreferWhatsApp))
}

func (r *ProfileRepository) linkChannel(ctx context.Context, email, identity, idColumn, enabledColumn, defaultPreferred string) error {
	// reverse lookup key must stay unique across profiles
	var owner string
	err := r.db.GetContext(ctx, &owner,
		fmt.Sprintf("SELECT email FROM profiles WHERE %s = ?", idColumn), identity)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check %s owner: %w", idColumn, err)
	}
	if err == nil && owner != email {
		return fmt.Errorf("%s %q bound to another profile: %w", idColumn, identity, domain.ErrConflict)
	}

	query := fmt.Sprintf(`
		INSERT INTO profiles (email, %[1]s, %[2]s, preferred_channel)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(email) DO UPDATE SET
			%[1]s = excluded.%[1]s,
			%[2]s = 1,
			updated_at = CURRENT_TIMESTAMP
	`, idColumn, enabledColumn)

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, email, identity, defaultPreferred)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				// lost the race with a concurrent link of the same identity
				return &criticalError{err: fmt.Errorf("link %s: %w", idColumn, domain.ErrConflict)}
			}
			return &criticalError{err: fmt.Errorf("link %s: %w", idColumn, err)}
		}
		return nil
	})
}

// UnlinkTelegram removes the Telegram binding from a profile
func (r *ProfileRepository) UnlinkTelegram(ctx context.Context, email string) error {
	return r.update(ctx, email, "UPDATE profiles SET telegram_chat_id = NULL, telegram_enabled = 0, updated_at = CURRENT_TIMESTAMP WHERE email = ?", email)
}

// UnlinkWhatsApp removes the WhatsApp binding from a profile
func (r *ProfileRepository) UnlinkWhatsApp(ctx context.Context, email string) error {
	return r.update(ctx, email, "UPDATE profiles SET whatsapp_number = NULL, whatsapp_enabled = 0, updated_at = CURRENT_TIMESTAMP WHERE email = ?", email)
}

// SetPreferredChannel updates the reminder delivery channel selector
func (r *ProfileRepository) SetPreferredChannel(ctx context.Context, email string, pc domain.PreferredChannel) error {
	return r.update(ctx, email,
		"UPDATE profiles SET preferred_channel = ?, updated_at = CURRENT_TIMESTAMP WHERE email = ?", pc, email)
}

// SetReminderSettings updates frequency and time-of-day
func (r *ProfileRepository) SetReminderSettings(ctx context.Context, email string, freq domain.Frequency, timeOfDay string) error {
	return r.update(ctx, email,
		"UPDATE profiles SET reminder_frequency = ?, reminder_time = ?, updated_at = CURRENT_TIMESTAMP WHERE email = ?",
		freq, timeOfDay, email)
}

// SetActiveTopic selects the single active roadmap topic, replacing any
// previous selection. Empty topic clears the selection.
func (r *ProfileRepository) SetActiveTopic(ctx context.Context, email, topic string) error {
	return r.update(ctx, email,
		"UPDATE profiles SET active_topic = ?, updated_at = CURRENT_TIMESTAMP WHERE email = ?", topic, email)
}

// Delete removes a profile entirely, administrative cleanup only
func (r *ProfileRepository) Delete(ctx context.Context, email string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM profiles WHERE email = ?", email)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListReminderCandidates returns profiles that can possibly receive a
// reminder: frequency not disabled, active topic set, at least one channel
// enabled. Time-of-day filtering is the scheduler's job.
func (r *ProfileRepository) ListReminderCandidates(ctx context.Context) ([]domain.Profile, error) {
	var rows []dbProfile
	query := `
		SELECT * FROM profiles
		WHERE reminder_frequency != 'disabled'
		  AND active_topic != ''
		  AND (telegram_enabled = 1 OR whatsapp_enabled = 1)
		ORDER BY email
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list reminder candidates: %w", err)
	}

	profiles := make([]domain.Profile, len(rows))
	for i := range rows {
		profiles[i] = *r.toDomain(&rows[i])
	}
	return profiles, nil
}

// update runs a single profile mutation with lock retries, mapping a
// zero-row update to domain.ErrNotFound so linkage failures are never
// silently swallowed
func (r *ProfileRepository) update(ctx context.Context, email, query string, args ...any) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update profile %s: %w", email, err)}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: domain.ErrNotFound}
		}
		return nil
	})
}
