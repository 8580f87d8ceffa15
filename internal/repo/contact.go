package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Contact is one application-intake record. Rows are immutable after
// creation: there is no update or delete, and ids are never reused.
type Contact struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateContactParams struct {
	FirstName string
	LastName  *string
	Email     string
	Phone     *string
	Message   string
}

// ContactStore persists Contact rows in Postgres.
type ContactStore struct {
	db *sql.DB
}

// Create inserts a row and returns it with the database-assigned id and
// creation timestamp.
func (s *ContactStore) Create(ctx context.Context, p CreateContactParams) (*Contact, error) {
	c := &Contact{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Message:   p.Message,
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO contacts (first_name, last_name, email, phone, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.FirstName, p.LastName, p.Email, p.Phone, p.Message,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return c, nil
}

// ListAll returns every contact, newest first. An empty table yields an
// empty non-nil slice.
func (s *ContactStore) ListAll(ctx context.Context) ([]*Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, email, phone, message, created_at
		 FROM contacts
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer rows.Close()

	contacts := make([]*Contact, 0)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return contacts, nil
}
