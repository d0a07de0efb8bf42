// Package entity contains the core business objects of the application.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered storefront principal.
type Customer struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	GroupID      int
	Status       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RedactedCustomer is the public view of a customer. It never carries the password hash
// and is the only customer shape placed into tokens or responses.
type RedactedCustomer struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	GroupID  int       `json:"group_id"`
	Status   int       `json:"status"`
}

// Redact returns a copy of the customer without credential material.
func (c *Customer) Redact() *RedactedCustomer {
	return &RedactedCustomer{
		ID:       c.ID,
		Email:    c.Email,
		FullName: c.FullName,
		GroupID:  c.GroupID,
		Status:   c.Status,
	}
}
