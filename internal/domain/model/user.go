// Пакет model — доменные модели TimeBank.
package model

import "time"

// User — зарегистрированный пользователь.
// Хранится в таблице users. Записи никогда не удаляются.
type User struct {
	// ID — идентификатор пользователя
	ID int64 `json:"id"`
	// Name — отображаемое имя
	Name string `json:"name"`
	// Email — уникальный адрес (сравнение регистрозависимое, как хранится)
	Email string `json:"email"`
	// PasswordHash — bcrypt-хэш пароля. Никогда не сериализуется в ответы API.
	PasswordHash string `json:"-"`
	// Bio — о себе
	Bio string `json:"bio"`
	// SkillsOffered — предлагаемые навыки (свободный текст)
	SkillsOffered string `json:"skills_offered"`
	// SkillsNeeded — искомые навыки (свободный текст)
	SkillsNeeded string `json:"skills_needed"`
	// Location — местоположение
	Location string `json:"location"`
	// ExperienceLevel — уровень опыта
	ExperienceLevel string `json:"experience_level"`
	// ProfilePic — имя файла аватара в хранилище загрузок (nil — не задан)
	ProfilePic *string `json:"profile_pic"`
	// CreatedAt — время регистрации
	CreatedAt time.Time `json:"created_at"`
}
