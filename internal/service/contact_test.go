package service

import (
	"context"
	"errors"
	"testing"
)

func TestContactSubmit(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo, testLogger())

	err := svc.Submit(context.Background(), 1, "Alice", "+371 20000000", "Вопрос", "Как обменять часы?")
	if err != nil {
		t.Fatalf("Submit() ошибка: %v", err)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("сообщений = %d, ожидается 1", len(repo.messages))
	}
	if repo.messages[0].UserID != 1 {
		t.Errorf("UserID = %d, ожидается 1", repo.messages[0].UserID)
	}
}

func TestContactSubmit_Validation(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo, testLogger())

	err := svc.Submit(context.Background(), 1, "Alice", "", "Вопрос", "Текст")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("ожидается ErrValidation, получено: %v", err)
	}
	if len(repo.messages) != 0 {
		t.Error("сообщение не должно быть сохранено")
	}
}
