// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberStatus represents the lifecycle state of an email subscriber.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberPending      SubscriberStatus = "pending"
)

// Subscriber is an email-list member captured through the signup form.
type Subscriber struct {
	ID           uuid.UUID        `json:"id"`
	Email        string           `json:"email"`
	Status       SubscriberStatus `json:"status"`
	Source       string           `json:"source"`
	SubscribedAt time.Time        `json:"subscribed_at"`
}
