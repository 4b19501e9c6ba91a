package config

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates every table the API reads or writes. All statements are
// CREATE TABLE IF NOT EXISTS, so running it on every boot is safe.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(50) DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(30) NOT NULL,
	status VARCHAR(30) DEFAULT 'active',
	wallet_balance DECIMAL(12,2) DEFAULT 0,
	preferred_currency VARCHAR(3) DEFAULT 'USD',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_email (email),
	UNIQUE KEY uniq_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS activities (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	advertiser_id BIGINT NOT NULL,
	title VARCHAR(255) NOT NULL,
	description TEXT,
	location VARCHAR(255) NOT NULL,
	date VARCHAR(20),
	price DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	available_spots INT NOT NULL DEFAULT 0,
	status VARCHAR(30) DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_advertiser (advertiser_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS itineraries (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	guide_id BIGINT NOT NULL,
	title VARCHAR(255) NOT NULL,
	description TEXT,
	language VARCHAR(50),
	price DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	available_seats INT NOT NULL DEFAULT 0,
	start_date VARCHAR(20),
	end_date VARCHAR(20),
	status VARCHAR(30) DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_guide (guide_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS products (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	seller_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	description TEXT,
	price DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	available_stock INT NOT NULL DEFAULT 0,
	status VARCHAR(30) DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_seller (seller_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS historical_places (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	governor_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	description TEXT,
	location VARCHAR(255) NOT NULL,
	ticket_price DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	opening_hours VARCHAR(100),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_governor (governor_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS categories (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	UNIQUE KEY uniq_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS tags (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	UNIQUE KEY uniq_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS historical_tags (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	period VARCHAR(100),
	UNIQUE KEY uniq_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS companies (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	advertiser_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	website VARCHAR(255),
	hotline VARCHAR(50),
	industry VARCHAR(100),
	KEY idx_advertiser (advertiser_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS tourist_itineraries (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	title VARCHAR(255) NOT NULL,
	locations TEXT,
	start_date VARCHAR(20),
	end_date VARCHAR(20),
	tags VARCHAR(255),
	KEY idx_tourist (tourist_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS promo_codes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	code VARCHAR(100) NOT NULL,
	percent_off DECIMAL(5,2) NOT NULL,
	status VARCHAR(30) NOT NULL DEFAULT 'active',
	start_date VARCHAR(20),
	end_date VARCHAR(20),
	usage_limit INT NOT NULL DEFAULT 0,
	times_used INT NOT NULL DEFAULT 0,
	UNIQUE KEY uniq_code (code)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS cart_items (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	product_id BIGINT NOT NULL,
	quantity INT NOT NULL DEFAULT 1,
	UNIQUE KEY uniq_tourist_product (tourist_id, product_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS payment_sessions (
	id VARCHAR(64) PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	kind VARCHAR(30) NOT NULL,
	payload JSON,
	amount DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	promo_code VARCHAR(100),
	percent_off DECIMAL(5,2) DEFAULT 0,
	payment_type VARCHAR(30) NOT NULL,
	status VARCHAR(30) NOT NULL DEFAULT 'pending',
	created_at VARCHAR(30),
	confirmed_at VARCHAR(30),
	KEY idx_tourist (tourist_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS flight_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	flight_id VARCHAR(100) NOT NULL,
	origin VARCHAR(100) NOT NULL,
	destination VARCHAR(100) NOT NULL,
	departure_date VARCHAR(30),
	arrival_date VARCHAR(30),
	price DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	number_of_tickets INT NOT NULL DEFAULT 1,
	seat_type VARCHAR(30),
	flight_type VARCHAR(30),
	payment_type VARCHAR(30) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_tourist (tourist_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS hotel_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	hotel_id VARCHAR(100) NOT NULL,
	hotel_name VARCHAR(255) NOT NULL,
	checkin_date VARCHAR(20),
	checkout_date VARCHAR(20),
	room_name VARCHAR(255),
	number_of_adults INT NOT NULL DEFAULT 1,
	number_of_rooms INT NOT NULL DEFAULT 1,
	price DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	payment_type VARCHAR(30) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_tourist (tourist_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS transportation_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	transport_id VARCHAR(100) NOT NULL,
	origin VARCHAR(100) NOT NULL,
	destination VARCHAR(100) NOT NULL,
	departure_date VARCHAR(30),
	seats INT NOT NULL DEFAULT 1,
	price DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	payment_type VARCHAR(30) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_tourist (tourist_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS item_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	item_type VARCHAR(30) NOT NULL,
	item_id BIGINT NOT NULL,
	quantity INT NOT NULL DEFAULT 1,
	booking_date VARCHAR(30),
	price DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	payment_type VARCHAR(30) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_tourist (tourist_id),
	KEY idx_item (item_type, item_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS orders (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	total DECIMAL(12,2) NOT NULL,
	currency VARCHAR(3) NOT NULL,
	payment_type VARCHAR(30) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_tourist (tourist_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS order_items (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	order_id BIGINT NOT NULL,
	product_id BIGINT NOT NULL,
	quantity INT NOT NULL DEFAULT 1,
	unit_price DECIMAL(12,2) NOT NULL,
	KEY idx_order (order_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS complaints (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tourist_id BIGINT NOT NULL,
	title VARCHAR(255) NOT NULL,
	body TEXT NOT NULL,
	status VARCHAR(30) NOT NULL DEFAULT 'pending',
	reply TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_tourist (tourist_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS notifications (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	role VARCHAR(30),
	title VARCHAR(255) NOT NULL,
	body TEXT NOT NULL,
	seen TINYINT(1) NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_user (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}
