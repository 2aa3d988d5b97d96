package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/ownership"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
	"github.com/SnehaKumari118/timebank-backend/internal/storage/filestore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newIdentityService(t *testing.T, users repository.UserRepository) *IdentityService {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("ошибка создания FileStore: %v", err)
	}
	return NewIdentityService(users, store,
		[]byte("0123456789abcdef0123456789abcdef"), time.Hour, testLogger())
}

func TestRegister_Validation(t *testing.T) {
	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"пустое имя", "", "a@x.com", "secret1"},
		{"пустой email", "Alice", "", "secret1"},
		{"пустой пароль", "Alice", "a@x.com", ""},
		{"email без @", "Alice", "ax.com", "secret1"},
		{"email без домена верхнего уровня", "Alice", "a@xcom", "secret1"},
		{"email с пробелом", "Alice", "a @x.com", "secret1"},
		{"пароль из 5 символов", "Alice", "a@x.com", "12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := newFakeUserRepo()
			svc := newIdentityService(t, users)

			err := svc.Register(context.Background(), tc.userName, tc.email, tc.password)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ожидается ErrValidation, получено: %v", err)
			}
			if len(users.byID) != 0 {
				t.Error("пользователь не должен быть создан")
			}
		})
	}
}

func TestRegister_MinPasswordBoundary(t *testing.T) {
	users := newFakeUserRepo()
	svc := newIdentityService(t, users)

	// Ровно 6 символов — проходит
	if err := svc.Register(context.Background(), "Alice", "a@x.com", "123456"); err != nil {
		t.Fatalf("пароль из 6 символов должен проходить: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newIdentityService(t, users)
	ctx := context.Background()

	if err := svc.Register(ctx, "Alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("первая регистрация: %v", err)
	}
	err := svc.Register(ctx, "Alice Two", "a@x.com", "secret2")
	if !errors.Is(err, repository.ErrConflict) {
		t.Errorf("ожидается ErrConflict, получено: %v", err)
	}
	if len(users.byID) != 1 {
		t.Errorf("должна существовать ровно одна запись, найдено %d", len(users.byID))
	}
}

func TestRegister_StoresBcryptHash(t *testing.T) {
	users := newFakeUserRepo()
	svc := newIdentityService(t, users)

	if err := svc.Register(context.Background(), "Alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("регистрация: %v", err)
	}

	u := users.byID[1]
	if u.PasswordHash == "secret1" {
		t.Fatal("пароль сохранён открытым текстом")
	}
	if !strings.HasPrefix(u.PasswordHash, "$2") {
		t.Errorf("ожидается bcrypt-хэш, получено: %q", u.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) != nil {
		t.Error("хэш не соответствует паролю")
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newIdentityService(t, users)
	ctx := context.Background()

	if err := svc.Register(ctx, "Alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("регистрация: %v", err)
	}

	u, token, err := svc.Login(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login() ошибка: %v", err)
	}
	if u.Email != "a@x.com" {
		t.Errorf("Email = %q", u.Email)
	}
	if token == "" {
		t.Error("токен не выпущен")
	}

	// Неверный пароль и несуществующий email — одна и та же ошибка
	if _, _, err := svc.Login(ctx, "a@x.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("неверный пароль: ожидается ErrInvalidCredentials, получено %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@x.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("неизвестный email: ожидается ErrInvalidCredentials, получено %v", err)
	}
}

func TestUpdateProfile_OwnershipEnforced(t *testing.T) {
	users := newFakeUserRepo()
	svc := newIdentityService(t, users)
	ctx := context.Background()

	if err := svc.Register(ctx, "Alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("регистрация: %v", err)
	}

	upd := ProfileUpdate{Name: "Mallory", Email: "m@x.com"}
	// actingID=2 пытается изменить профиль id=1
	err := svc.UpdateProfile(ctx, 2, 1, upd, nil, "")
	if !errors.Is(err, ownership.ErrDenied) {
		t.Fatalf("ожидается ErrDenied, получено: %v", err)
	}
	if users.byID[1].Name != "Alice" {
		t.Error("профиль не должен измениться")
	}

	// Владелец — успех
	upd = ProfileUpdate{Name: "Alice B.", Email: "a@x.com", Location: "Riga"}
	if err := svc.UpdateProfile(ctx, 1, 1, upd, nil, ""); err != nil {
		t.Fatalf("обновление владельцем: %v", err)
	}
	if users.byID[1].Name != "Alice B." || users.byID[1].Location != "Riga" {
		t.Error("профиль не обновлён")
	}
}

func TestUpdateProfile_ReplacesImage(t *testing.T) {
	users := newFakeUserRepo()
	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("ошибка создания FileStore: %v", err)
	}
	svc := NewIdentityService(users, store,
		[]byte("0123456789abcdef0123456789abcdef"), time.Hour, testLogger())
	ctx := context.Background()

	if err := svc.Register(ctx, "Alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("регистрация: %v", err)
	}

	upd := ProfileUpdate{Name: "Alice", Email: "a@x.com"}
	if err := svc.UpdateProfile(ctx, 1, 1, upd, strings.NewReader("img-1"), "one.png"); err != nil {
		t.Fatalf("первая загрузка аватара: %v", err)
	}
	first := *users.byID[1].ProfilePic
	if !store.Exists(first) {
		t.Fatal("первый аватар не сохранён")
	}

	if err := svc.UpdateProfile(ctx, 1, 1, upd, strings.NewReader("img-2"), "two.png"); err != nil {
		t.Fatalf("замена аватара: %v", err)
	}
	second := *users.byID[1].ProfilePic
	if second == first {
		t.Fatal("ссылка на аватар не заменена")
	}
	if !store.Exists(second) {
		t.Error("новый аватар должен существовать")
	}
	// Прежний файл удалён после успешного обновления строки
	if store.Exists(first) {
		t.Error("прежний аватар должен быть удалён")
	}
}

func TestUpdateProfile_ImageCleanupOnDBFailure(t *testing.T) {
	users := newFakeUserRepo()
	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("ошибка создания FileStore: %v", err)
	}
	svc := NewIdentityService(users, store,
		[]byte("0123456789abcdef0123456789abcdef"), time.Hour, testLogger())
	ctx := context.Background()

	if err := svc.Register(ctx, "Alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("регистрация: %v", err)
	}
	// UPDATE падает уже после сохранения нового аватара
	users.failUpdate = repository.ErrNotFound

	upd := ProfileUpdate{Name: "Alice", Email: "a@x.com"}
	err = svc.UpdateProfile(ctx, 1, 1, upd, strings.NewReader("img"), "pic.png")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("ожидается ErrNotFound, получено: %v", err)
	}

	// Сохранённый до неудачной записи файл убран — ссылок на него нет
	entries, readErr := readDirNames(store.DataDir())
	if readErr != nil {
		t.Fatalf("чтение директории: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("директория должна быть пустой, найдено: %v", entries)
	}
}
