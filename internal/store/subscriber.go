// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"richgradstudent/internal/models"
)

// SubscriberStore handles email-list database operations.
type SubscriberStore struct {
	db *sql.DB
}

// NewSubscriberStore creates a new SubscriberStore with the given database
// connection.
func NewSubscriberStore(db *sql.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

// Subscribe records an email address with active status. Idempotent: an
// already subscribed address is left alone and a previously unsubscribed one
// is reactivated, so callers can always report success without leaking
// whether the address was known.
func (s *SubscriberStore) Subscribe(email, source string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	sub := &models.Subscriber{}
	err := s.db.QueryRow(`
		INSERT INTO subscribers (email, status, source)
		VALUES ($1, 'active', $2)
		ON CONFLICT (email) DO UPDATE SET status = 'active'
		RETURNING id, email, status, source, subscribed_at
	`, email, source).Scan(&sub.ID, &sub.Email, &sub.Status, &sub.Source, &sub.SubscribedAt)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	return sub, nil
}

// Unsubscribe marks a subscriber as unsubscribed by id. Unknown ids are not
// an error; the outcome (address no longer mailed) holds either way.
func (s *SubscriberStore) Unsubscribe(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE subscribers SET status = 'unsubscribed' WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return nil
}

// FindByEmail retrieves a subscriber by address. Returns nil if not found.
func (s *SubscriberStore) FindByEmail(email string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	sub := &models.Subscriber{}
	err := s.db.QueryRow(`
		SELECT id, email, status, source, subscribed_at
		FROM subscribers WHERE email = $1
	`, email).Scan(&sub.ID, &sub.Email, &sub.Status, &sub.Source, &sub.SubscribedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	return sub, nil
}
