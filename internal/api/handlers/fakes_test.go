package handlers

// In-memory репозитории для тестов handlers. Семантика повторяет
// контракты репозиториев: ErrNotFound, ErrConflict, порядок «новые первыми».

import (
	"context"
	"sort"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
)

// --- UserRepository ---

type fakeUserRepo struct {
	nextID int64
	byID   map[int64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byID: make(map[int64]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User, newProfilePic *string) error {
	existing, ok := r.byID[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Name = u.Name
	existing.Email = u.Email
	existing.Bio = u.Bio
	existing.SkillsOffered = u.SkillsOffered
	existing.SkillsNeeded = u.SkillsNeeded
	existing.Location = u.Location
	existing.ExperienceLevel = u.ExperienceLevel
	if newProfilePic != nil {
		existing.ProfilePic = newProfilePic
	}
	return nil
}

// --- ServiceRepository ---

type fakeServiceRepo struct {
	nextID int64
	byID   map[int64]*model.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{nextID: 1, byID: make(map[int64]*model.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, s *model.Service) error {
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id int64) (*model.Service, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) ListAll(_ context.Context) ([]*model.Service, error) {
	out := make([]*model.Service, 0, len(r.byID))
	for _, s := range r.byID {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeServiceRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*model.Service, error) {
	all, _ := r.ListAll(ctx)
	out := make([]*model.Service, 0)
	for _, s := range all {
		if s.UserID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, s *model.Service) error {
	existing, ok := r.byID[s.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Title = s.Title
	existing.Description = s.Description
	existing.Hours = s.Hours
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// --- LearningResourceRepository ---

type fakeResourceRepo struct {
	nextID int64
	byID   map[int64]*model.LearningResource
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{nextID: 1, byID: make(map[int64]*model.LearningResource)}
}

func (r *fakeResourceRepo) Create(_ context.Context, lr *model.LearningResource) error {
	lr.ID = r.nextID
	r.nextID++
	cp := *lr
	r.byID[lr.ID] = &cp
	return nil
}

func (r *fakeResourceRepo) GetByID(_ context.Context, id int64) (*model.LearningResource, error) {
	lr, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *lr
	return &cp, nil
}

func (r *fakeResourceRepo) ListAll(_ context.Context) ([]*model.LearningResource, error) {
	out := make([]*model.LearningResource, 0, len(r.byID))
	for _, lr := range r.byID {
		cp := *lr
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeResourceRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*model.LearningResource, error) {
	all, _ := r.ListAll(ctx)
	out := make([]*model.LearningResource, 0)
	for _, lr := range all {
		if lr.UserID == ownerID {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (r *fakeResourceRepo) Update(_ context.Context, lr *model.LearningResource) error {
	existing, ok := r.byID[lr.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Title = lr.Title
	existing.Description = lr.Description
	return nil
}

func (r *fakeResourceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// --- ContactMessageRepository ---

type fakeContactRepo struct {
	nextID int64
	saved  []*model.ContactMessage
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{nextID: 1}
}

func (r *fakeContactRepo) Create(_ context.Context, m *model.ContactMessage) error {
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.saved = append(r.saved, &cp)
	return nil
}
