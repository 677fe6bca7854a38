package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Catalog items - the ordered set of controllable objects
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			payload TEXT NOT NULL DEFAULT '{}',
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings - key-value pairs, values are JSON documents
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Bindings - plugin actions fired on navigation intents
		`CREATE TABLE IF NOT EXISTS bindings (
			id TEXT PRIMARY KEY,
			direction TEXT NOT NULL CHECK(direction IN ('advance', 'retreat')),
			plugin_name TEXT NOT NULL,
			action_name TEXT NOT NULL,
			config TEXT NOT NULL DEFAULT '{}',
			enabled INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_items_position ON items(position)`,
		`CREATE INDEX IF NOT EXISTS idx_bindings_direction ON bindings(direction)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
