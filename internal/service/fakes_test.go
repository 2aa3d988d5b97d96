package service

// Фейковые репозитории в памяти для unit-тестов сервисного слоя.
// Повторяют контракты pgx-репозиториев, включая ErrNotFound/ErrConflict.

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
)

// readDirNames возвращает имена файлов в директории.
func readDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// --- users ---

type fakeUserRepo struct {
	nextID int64
	byID   map[int64]*model.User
	// failCreate / failUpdate — имитация ошибки БД
	failCreate error
	failUpdate error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byID: map[int64]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return fmt.Errorf("%w: email уже зарегистрирован", repository.ErrConflict)
		}
	}
	u.ID = r.nextID
	u.CreatedAt = time.Now()
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
	if r.failUpdate != nil {
		return r.failUpdate
	}
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
		pic := *newProfilePic
		existing.ProfilePic = &pic
	}
	return nil
}

// --- services ---

type fakeServiceRepo struct {
	nextID int64
	byID   map[int64]*model.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{nextID: 1, byID: map[int64]*model.Service{}}
}

func (r *fakeServiceRepo) Create(_ context.Context, s *model.Service) error {
	s.ID = r.nextID
	s.CreatedAt = time.Now()
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
	result := []*model.Service{}
	for _, s := range r.byID {
		cp := *s
		result = append(result, &cp)
	}
	// Новые первыми — по id, как ORDER BY id DESC
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeServiceRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*model.Service, error) {
	all, _ := r.ListAll(ctx)
	result := []*model.Service{}
	for _, s := range all {
		if s.UserID == ownerID {
			result = append(result, s)
		}
	}
	return result, nil
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

// --- learning resources ---

type fakeResourceRepo struct {
	nextID int64
	byID   map[int64]*model.LearningResource
	// failCreate — имитация ошибки БД при вставке
	failCreate error
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{nextID: 1, byID: map[int64]*model.LearningResource{}}
}

func (r *fakeResourceRepo) Create(_ context.Context, lr *model.LearningResource) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	lr.ID = r.nextID
	lr.CreatedAt = time.Now()
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
	result := []*model.LearningResource{}
	for _, lr := range r.byID {
		cp := *lr
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeResourceRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*model.LearningResource, error) {
	all, _ := r.ListAll(ctx)
	result := []*model.LearningResource{}
	for _, lr := range all {
		if lr.UserID == ownerID {
			result = append(result, lr)
		}
	}
	return result, nil
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

// --- contact messages ---

type fakeContactRepo struct {
	nextID   int64
	messages []*model.ContactMessage
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{nextID: 1}
}

func (r *fakeContactRepo) Create(_ context.Context, m *model.ContactMessage) error {
	m.ID = r.nextID
	m.CreatedAt = time.Now()
	r.nextID++
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}
