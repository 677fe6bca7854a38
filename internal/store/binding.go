package store

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Binding maps a navigation direction to a plugin action.
type Binding struct {
	ID         string          `json:"id"`
	Direction  string          `json:"direction"` // "advance" or "retreat"
	PluginName string          `json:"plugin_name"`
	ActionName string          `json:"action_name"`
	Config     json.RawMessage `json:"config"`
	Enabled    bool            `json:"enabled"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BindingRepository provides CRUD operations for intent bindings.
type BindingRepository struct {
	db *sql.DB
}

// Bindings returns the binding repository for this store.
func (s *Store) Bindings() *BindingRepository {
	return &BindingRepository{db: s.db}
}

// Create inserts a new binding into the database.
func (r *BindingRepository) Create(b *Binding) error {
	b.CreatedAt = time.Now()

	config := b.Config
	if config == nil {
		config = json.RawMessage("{}")
	}

	_, err := r.db.Exec(
		`INSERT INTO bindings (id, direction, plugin_name, action_name, config, enabled, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Direction, b.PluginName, b.ActionName, string(config), b.Enabled, b.CreatedAt,
	)
	return err
}

// ListByDirection retrieves all enabled bindings for a direction.
func (r *BindingRepository) ListByDirection(direction string) ([]*Binding, error) {
	rows, err := r.db.Query(
		`SELECT id, direction, plugin_name, action_name, config, enabled, created_at
		 FROM bindings WHERE direction = ? AND enabled = 1`,
		direction,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBindings(rows)
}

// List retrieves all bindings.
func (r *BindingRepository) List() ([]*Binding, error) {
	rows, err := r.db.Query(
		`SELECT id, direction, plugin_name, action_name, config, enabled, created_at
		 FROM bindings ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBindings(rows)
}

// Delete removes a binding by its ID.
func (r *BindingRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM bindings WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanBindings(rows *sql.Rows) ([]*Binding, error) {
	var bindings []*Binding
	for rows.Next() {
		b := &Binding{}
		var config string
		var enabled int

		err := rows.Scan(&b.ID, &b.Direction, &b.PluginName, &b.ActionName, &config, &enabled, &b.CreatedAt)
		if err != nil {
			return nil, err
		}

		b.Config = json.RawMessage(config)
		b.Enabled = enabled != 0
		bindings = append(bindings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bindings, nil
}
