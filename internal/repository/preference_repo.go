package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"classnotify/internal/model"
)

// PreferenceRepository reads notification_preferences. The store is owned
// by another service; this side never writes.
type PreferenceRepository struct {
	db *pgxpool.Pool
}

func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// ChannelFlags returns the channel flags for a (user, event type) pair,
// or nil when no row exists. Callers treat nil as "do not notify".
func (r *PreferenceRepository) ChannelFlags(ctx context.Context, userID, eventType string) (*model.Preference, error) {
	query := `
        SELECT uid, event_type, email_enabled, push_enabled
        FROM notification_preferences
        WHERE uid = $1 AND event_type = $2
    `
	var pref model.Preference
	err := r.db.QueryRow(ctx, query, userID, eventType).Scan(
		&pref.UserID, &pref.EventType, &pref.EmailEnabled, &pref.PushEnabled,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
