package events

import "context"

// Repository is the storage contract for events. List must execute the page
// fetch and the total count against the same WHERE clause inside one
// transaction so the pagination metadata matches the returned page.
type Repository interface {
	Create(ctx context.Context, event Event) (Event, error)
	List(ctx context.Context, params ListParams) ([]Event, int64, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	Delete(ctx context.Context, id int64) error
}
