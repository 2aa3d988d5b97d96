package service

import (
	"fmt"
	"math/rand/v2"
)

// descriptionTemplates — заготовки описаний услуг; %s заменяется названием.
var descriptionTemplates = []string{
	"I offer professional %s services with a focus on quality, efficiency, and timely delivery. Ideal for individuals and small teams.",
	"%s service designed to help you achieve your goals efficiently. Clear communication and reliable support guaranteed.",
	"Get expert help with %s. I provide structured, easy-to-understand solutions tailored to your needs.",
	"Looking for reliable %s? I offer practical solutions with a user-friendly and professional approach.",
	"High-quality %s service focused on problem-solving, learning, and long-term value.",
}

// GenerateDescription возвращает случайную заготовку описания услуги
// с подставленным названием.
func GenerateDescription(title string) (string, error) {
	if title == "" {
		return "", fmt.Errorf("%w: название обязательно", ErrValidation)
	}
	tpl := descriptionTemplates[rand.IntN(len(descriptionTemplates))]
	return fmt.Sprintf(tpl, title), nil
}
