package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/eventdesk/server/internal/auth"
	"github.com/eventdesk/server/internal/domain/events"
	"github.com/eventdesk/server/internal/domain/users"
)

const testEnv = "test"

func testJWT() *auth.JWTManager {
	return auth.NewJWTManager("test-secret-test-secret-test-secret", time.Hour, "eventdesk-test")
}

type fakeEventRepo struct {
	nextID int64
	items  map[int64]events.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1, items: make(map[int64]events.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, event events.Event) (events.Event, error) {
	event.ID = r.nextID
	r.nextID++
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	r.items[event.ID] = event
	return event, nil
}

func (r *fakeEventRepo) List(_ context.Context, params events.ListParams) ([]events.Event, int64, error) {
	all := make([]events.Event, 0, len(r.items))
	for _, event := range r.items {
		all = append(all, event)
	}
	sort.Slice(all, func(i, j int) bool {
		if params.SortOrder == "ASC" {
			return all[i].ID < all[j].ID
		}
		return all[i].ID > all[j].ID
	})

	total := int64(len(all))
	start := params.Offset()
	if start > len(all) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*events.Event, error) {
	event, ok := r.items[id]
	if !ok {
		return nil, events.ErrNotFound
	}
	return &event, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event events.Event) (events.Event, error) {
	if _, ok := r.items[event.ID]; !ok {
		return events.Event{}, events.ErrNotFound
	}
	event.UpdatedAt = time.Now()
	r.items[event.ID] = event
	return event, nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return events.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	nextID int64
	items  map[int64]users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, items: make(map[int64]users.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user users.User) (users.User, error) {
	for _, existing := range r.items {
		if existing.Email == user.Email {
			return users.User{}, users.ErrEmailTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.items[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	for _, user := range r.items {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, users.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*users.User, error) {
	user, ok := r.items[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user users.User) (users.User, error) {
	if _, ok := r.items[user.ID]; !ok {
		return users.User{}, users.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.items[user.ID] = user
	return user, nil
}
