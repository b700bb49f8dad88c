package events

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It marshals as
// "2006-01-02".
type Date struct {
	time.Time
}

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return Date{parsed}, nil
}

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(trimmed)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageURL    *string   `json:"imageUrl"`
	Status      string    `json:"status"`
	EventDate   Date      `json:"eventDate"`
	EventTime   string    `json:"eventTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateInput is the payload for creating an event. Status defaults to
// "ongoing" and imageUrl to null when omitted.
type CreateInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Status      string  `json:"status"`
	EventDate   string  `json:"event_date" validate:"required"`
	EventTime   string  `json:"event_time" validate:"required"`
}

// UpdateInput is a partial event payload. Nil fields are absent and leave the
// stored value untouched; a present empty imageUrl clears the image.
type UpdateInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Location    *string `json:"location" validate:"omitempty,min=1"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Status      *string `json:"status" validate:"omitempty,min=1"`
	EventDate   *string `json:"event_date"`
	EventTime   *string `json:"event_time" validate:"omitempty,min=1"`
}

// ListParams is a validated query specification. SortColumn and SortOrder
// only ever hold values from the fixed allow-lists in query.go, so they are
// safe to interpolate into an ORDER BY clause.
type ListParams struct {
	SortColumn string
	SortOrder  string
	Keyword    string
	Page       int
	PageSize   int
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int64 `json:"totalPages"`
}

type ListResult struct {
	Data       []Event    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
