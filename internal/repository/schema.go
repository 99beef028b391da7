package repository

// schema returns the DDL statements for a dialect, in dependency order.
func schema(d Dialect) []string {
	switch d {
	case DialectPostgres:
		return postgresSchema
	case DialectMySQL:
		return mysqlSchema
	default:
		return sqliteSchema
	}
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('ADMIN', 'EMPLOYEE')),
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_members (
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		inventory_id INTEGER NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, inventory_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_members_inventory ON inventory_members(inventory_id)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		inventory_id INTEGER NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
		created_at DATETIME NOT NULL,
		UNIQUE (inventory_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		inventory_id INTEGER NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		created_at DATETIME NOT NULL,
		UNIQUE (inventory_id, name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id)`,
	`CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL CHECK (type IN ('ADD', 'REMOVE')),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		item_id INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		inventory_id INTEGER NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users(id),
		created_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_operations_inventory ON operations(inventory_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_operations_item ON operations(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_operations_user ON operations(user_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('ADMIN', 'EMPLOYEE')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_members (
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		inventory_id BIGINT NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, inventory_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_members_inventory ON inventory_members(inventory_id)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		inventory_id BIGINT NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (inventory_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		inventory_id BIGINT NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
		quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (inventory_id, name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id)`,
	`CREATE TABLE IF NOT EXISTS operations (
		id BIGSERIAL PRIMARY KEY,
		type TEXT NOT NULL CHECK (type IN ('ADD', 'REMOVE')),
		quantity BIGINT NOT NULL CHECK (quantity > 0),
		item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		inventory_id BIGINT NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_operations_inventory ON operations(inventory_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_operations_item ON operations(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_operations_user ON operations(user_id)`,
}

// MySQL has no CREATE INDEX IF NOT EXISTS, so indexes are declared inline.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL CHECK (role IN ('ADMIN', 'EMPLOYEE')),
		created_at DATETIME(6) NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS inventories (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		created_at DATETIME(6) NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS inventory_members (
		user_id BIGINT NOT NULL,
		inventory_id BIGINT NOT NULL,
		PRIMARY KEY (user_id, inventory_id),
		KEY idx_members_inventory (inventory_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (inventory_id) REFERENCES inventories(id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		inventory_id BIGINT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_categories_inventory_name (inventory_id, name),
		FOREIGN KEY (inventory_id) REFERENCES inventories(id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS items (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category_id BIGINT NOT NULL,
		inventory_id BIGINT NOT NULL,
		quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		created_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_items_inventory_name (inventory_id, name),
		KEY idx_items_category (category_id),
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
		FOREIGN KEY (inventory_id) REFERENCES inventories(id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS operations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		type VARCHAR(8) NOT NULL CHECK (type IN ('ADD', 'REMOVE')),
		quantity BIGINT NOT NULL CHECK (quantity > 0),
		item_id BIGINT NOT NULL,
		inventory_id BIGINT NOT NULL,
		user_id BIGINT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		KEY idx_operations_inventory (inventory_id, created_at),
		KEY idx_operations_item (item_id),
		KEY idx_operations_user (user_id),
		FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
		FOREIGN KEY (inventory_id) REFERENCES inventories(id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,
}
