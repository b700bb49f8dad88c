package events

import (
	"context"
	"fmt"

	"github.com/eventdesk/server/internal/sanitize"
)

const defaultStatus = "ongoing"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Event, error) {
	date, err := ParseDate(input.EventDate)
	if err != nil {
		return nil, err
	}

	status := sanitize.Text(input.Status)
	if status == "" {
		status = defaultStatus
	}

	event := Event{
		Title:       sanitize.Text(input.Title),
		Description: sanitize.HTML(input.Description),
		Location:    sanitize.Text(input.Location),
		ImageURL:    input.ImageURL,
		Status:      status,
		EventDate:   date,
		EventTime:   sanitize.Text(input.EventTime),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List runs the validated query spec and derives pagination metadata. Total
// and the returned page come from one repository transaction, so totalPages
// is consistent with the page contents even under concurrent writes.
func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pageSize := int64(params.PageSize)
	totalPages := (total + pageSize - 1) / pageSize

	if items == nil {
		items = []Event{}
	}

	return &ListResult{
		Data: items,
		Pagination: Pagination{
			Total:      total,
			Page:       params.Page,
			PageSize:   params.PageSize,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial payload to an existing event. Absent (nil) fields
// are left untouched; a present empty imageUrl clears the stored image. The
// existence check runs first so a missing id is always ErrNotFound.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event := *existing
	if input.Title != nil {
		event.Title = sanitize.Text(*input.Title)
	}
	if input.Description != nil {
		event.Description = sanitize.HTML(*input.Description)
	}
	if input.Location != nil {
		event.Location = sanitize.Text(*input.Location)
	}
	if input.ImageURL != nil {
		if *input.ImageURL == "" {
			event.ImageURL = nil
		} else {
			event.ImageURL = input.ImageURL
		}
	}
	if input.Status != nil {
		event.Status = sanitize.Text(*input.Status)
	}
	if input.EventDate != nil {
		date, err := ParseDate(*input.EventDate)
		if err != nil {
			return nil, err
		}
		event.EventDate = date
	}
	if input.EventTime != nil {
		event.EventTime = sanitize.Text(*input.EventTime)
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete hard-deletes an event and returns a confirmation message.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return fmt.Sprintf("Event with ID %d has been deleted successfully", id), nil
}
