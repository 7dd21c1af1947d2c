package repositories

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
)

var eventColumns = []string{
	"id", "title", "description", "location", "event_date", "organizer", "capacity",
	"registered_attendees", "registration_fee::text", "image_url", "created_at", "updated_at",
}

func scanEvent(row rowScanner) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.EventDate, &e.Organizer, &e.Capacity,
		&e.RegisteredAttendees, &e.RegistrationFee, &e.ImageURL, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// EventRepository handles event database operations
type EventRepository struct {
	t *table[models.Event]
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(conn db.DBTX) *EventRepository {
	return &EventRepository{t: newTable(conn, "events", eventColumns, []string{"event_date DESC", "id DESC"}, scanEvent)}
}

// GetAll retrieves all events, latest date first
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	return r.t.list(ctx, nil)
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return r.t.get(ctx, id)
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	return r.t.insert(ctx, map[string]interface{}{
		"title":                e.Title,
		"description":          e.Description,
		"location":             e.Location,
		"event_date":           e.EventDate,
		"organizer":            e.Organizer,
		"capacity":             e.Capacity,
		"registered_attendees": e.RegisteredAttendees,
		"registration_fee":     e.RegistrationFee,
		"image_url":            e.ImageURL,
	})
}

// Update applies a partial update
func (r *EventRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Event, error) {
	return r.t.update(ctx, id, fields)
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

// Count returns the number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}
