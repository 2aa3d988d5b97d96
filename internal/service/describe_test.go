package service

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateDescription(t *testing.T) {
	desc, err := GenerateDescription("Web Design")
	if err != nil {
		t.Fatalf("GenerateDescription() ошибка: %v", err)
	}
	if !strings.Contains(desc, "Web Design") {
		t.Errorf("описание должно содержать название: %q", desc)
	}
}

func TestGenerateDescription_EmptyTitle(t *testing.T) {
	if _, err := GenerateDescription(""); !errors.Is(err, ErrValidation) {
		t.Errorf("ожидается ErrValidation, получено: %v", err)
	}
}

func TestGenerateDescription_KnownTemplate(t *testing.T) {
	// Любой результат — одна из пяти заготовок
	desc, err := GenerateDescription("X")
	if err != nil {
		t.Fatalf("GenerateDescription() ошибка: %v", err)
	}
	found := false
	for _, tpl := range descriptionTemplates {
		if desc == strings.ReplaceAll(tpl, "%s", "X") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("результат не соответствует ни одной заготовке: %q", desc)
	}
}
