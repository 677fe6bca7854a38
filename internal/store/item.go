package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// Item represents a catalog object stored in the database.
type Item struct {
	ID        string
	Name      string
	Payload   json.RawMessage
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemRepository provides CRUD operations for catalog items.
type ItemRepository struct {
	db *sql.DB
}

// Items returns the item repository for this store.
func (s *Store) Items() *ItemRepository {
	return &ItemRepository{db: s.db}
}

// Create inserts a new item into the database.
func (r *ItemRepository) Create(it *Item) error {
	now := time.Now()
	it.CreatedAt = now
	it.UpdatedAt = now

	payload := it.Payload
	if payload == nil {
		payload = json.RawMessage("{}")
	}

	_, err := r.db.Exec(
		`INSERT INTO items (id, name, payload, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		it.ID, it.Name, string(payload), it.Position, it.CreatedAt, it.UpdatedAt,
	)
	return err
}

// GetByID retrieves an item by its ID.
func (r *ItemRepository) GetByID(id string) (*Item, error) {
	it := &Item{}
	var payload string

	err := r.db.QueryRow(
		`SELECT id, name, payload, position, created_at, updated_at
		 FROM items WHERE id = ?`,
		id,
	).Scan(&it.ID, &it.Name, &payload, &it.Position, &it.CreatedAt, &it.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	it.Payload = json.RawMessage(payload)
	return it, nil
}

// List retrieves all items ordered by position.
func (r *ItemRepository) List() ([]*Item, error) {
	rows, err := r.db.Query(
		`SELECT id, name, payload, position, created_at, updated_at
		 FROM items ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		it := &Item{}
		var payload string

		err := rows.Scan(&it.ID, &it.Name, &payload, &it.Position, &it.CreatedAt, &it.UpdatedAt)
		if err != nil {
			return nil, err
		}

		it.Payload = json.RawMessage(payload)
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Update updates an existing item in the database.
func (r *ItemRepository) Update(it *Item) error {
	it.UpdatedAt = time.Now()

	payload := it.Payload
	if payload == nil {
		payload = json.RawMessage("{}")
	}

	result, err := r.db.Exec(
		`UPDATE items SET name = ?, payload = ?, position = ?, updated_at = ?
		 WHERE id = ?`,
		it.Name, string(payload), it.Position, it.UpdatedAt, it.ID,
	)
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

// Delete removes an item from the database by its ID.
func (r *ItemRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM items WHERE id = ?`, id)
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

// Count returns the number of catalog items.
func (r *ItemRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
