package services

import (
	"context"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/apperrors"
)

// EventService manages events. A capacity of zero means unlimited; otherwise
// registered attendees may not exceed it.
type EventService interface {
	List(ctx context.Context) ([]*models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type eventServiceImpl struct {
	repo EventRepository
}

// NewEventService creates a new EventService
func NewEventService(repo EventRepository) EventService {
	return &eventServiceImpl{repo: repo}
}

func checkAttendance(capacity, registered int) error {
	if capacity > 0 && registered > capacity {
		return apperrors.NewValidationError("registeredAttendees", "must not exceed capacity")
	}
	return nil
}

func (s *eventServiceImpl) List(ctx context.Context) ([]*models.Event, error) {
	return s.repo.GetAll(ctx)
}

func (s *eventServiceImpl) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *eventServiceImpl) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	eventDate, err := parseDate("eventDate", req.EventDate)
	if err != nil {
		return nil, err
	}
	if err := checkAttendance(req.Capacity, req.RegisteredAttendees); err != nil {
		return nil, err
	}

	fee := req.RegistrationFee
	if fee == "" {
		fee = "0"
	}

	return s.repo.Create(ctx, &models.Event{
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		EventDate:           eventDate,
		Organizer:           req.Organizer,
		Capacity:            req.Capacity,
		RegisteredAttendees: req.RegisteredAttendees,
		RegistrationFee:     fee,
		ImageURL:            nilIfBlank(req.ImageURL),
	})
}

func (s *eventServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	fields := req.Fields()

	if req.EventDate != nil {
		eventDate, err := parseDate("eventDate", *req.EventDate)
		if err != nil {
			return nil, err
		}
		fields["event_date"] = eventDate
	}

	if req.Capacity != nil || req.RegisteredAttendees != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		capacity := valueOr(req.Capacity, current.Capacity)
		registered := valueOr(req.RegisteredAttendees, current.RegisteredAttendees)
		if err := checkAttendance(capacity, registered); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *eventServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
