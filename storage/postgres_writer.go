package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/utils"

	_ "github.com/lib/pq"
)

// PostgresWriter persists normalized payloads in PostgreSQL. The full
// payload is stored as JSONB alongside a few queryable summary columns.
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(connStr string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

// CreateTable creates the rooms table if it doesn't exist, with indexes
func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS rooms (
		id                 SERIAL PRIMARY KEY,
		url                TEXT UNIQUE,
		property_type      TEXT,
		person_capacity    INT,
		currency           VARCHAR(8),
		nightly_price      NUMERIC(10,2),
		guest_satisfaction NUMERIC(4,2),
		reviews_count      INT,
		payload            JSONB NOT NULL,
		scraped_at         TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_rooms_nightly_price      ON rooms (nightly_price);
	CREATE INDEX IF NOT EXISTS idx_rooms_guest_satisfaction ON rooms (guest_satisfaction);
	CREATE INDEX IF NOT EXISTS idx_rooms_property_type      ON rooms (property_type);
	`
	_, err := w.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'rooms' is ready")
	return nil
}

// SaveRooms inserts normalized rooms in a single transaction, skipping
// URLs already present.
func (w *PostgresWriter) SaveRooms(rooms []*models.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO rooms (url, property_type, person_capacity, currency, nightly_price, guest_satisfaction, reviews_count, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, room := range rooms {
		payload, marshalErr := json.Marshal(room)
		if marshalErr != nil {
			w.logger.Warn("Skipping insert for '%s': %v", derefString(room.URL), marshalErr)
			continue
		}

		var currency, price any
		if room.Price != nil {
			currency = derefString(room.Price.CurrencySymbol)
			price = room.Price.Amount
		}

		_, err = stmt.Exec(
			nullableString(room.URL),
			nullableString(room.PropertyType),
			nullableInt(room.PersonCapacity),
			currency,
			price,
			nullableFloat(room.Rating.GuestSatisfaction),
			nullableInt(room.Rating.ReviewsCount),
			payload,
		)
		if err != nil {
			w.logger.Warn("Skipping insert for '%s': %v", derefString(room.URL), err)
			continue
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Inserted %d/%d rooms into PostgreSQL", inserted, len(rooms))
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() {
	if w.db != nil {
		_ = w.db.Close()
	}
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
