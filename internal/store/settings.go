package store

import (
	"database/sql"
	"encoding/json"
	"errors"
)

// Setting keys used by the application.
const (
	SettingControlTuning = "control_tuning"
	SettingIntentConfig  = "intent_config"
)

// SettingsRepository provides access to key-value settings. Values are
// stored as JSON documents.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get retrieves the raw JSON value for a key.
func (r *SettingsRepository) Get(key string) (json.RawMessage, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(value), nil
}

// Set upserts the JSON value for a key.
func (r *SettingsRepository) Set(key string, value json.RawMessage) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	return err
}

// GetJSON unmarshals the value for a key into out.
func (r *SettingsRepository) GetJSON(key string, out any) error {
	raw, err := r.Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// SetJSON marshals v and stores it under key.
func (r *SettingsRepository) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.Set(key, raw)
}
