// Пакет service — бизнес-логика TimeBank: учётные записи, услуги,
// учебные материалы, обратная связь. Каждая мутирующая операция
// над пользовательской записью проходит через ownership.Verify.
package service

import "errors"

// Ошибки сервисного слоя. Дополняют ошибки нижних слоёв
// (repository.ErrNotFound, repository.ErrConflict, ownership.ErrDenied),
// которые пробрасываются наверх без изменения.
var (
	// ErrValidation — некорректные или отсутствующие входные данные.
	ErrValidation = errors.New("некорректные входные данные")
	// ErrInvalidCredentials — неверная пара email/пароль.
	// Намеренно не различает «нет такого пользователя» и «неверный пароль».
	ErrInvalidCredentials = errors.New("неверные учётные данные")
)
