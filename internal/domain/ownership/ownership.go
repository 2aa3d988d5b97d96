// Пакет ownership — проверка принадлежности записи действующему пользователю.
// Единая точка авторизации для всех мутирующих операций над записями,
// принадлежащими пользователю (услуги, материалы, профиль).
package ownership

import "errors"

// ErrDenied — действующий пользователь не является владельцем записи.
// Операция должна быть прервана без каких-либо изменений.
var ErrDenied = errors.New("доступ запрещён: пользователь не владеет записью")

// Verify сравнивает владельца записи с действующим пользователем.
// Чистая функция без побочных эффектов. Возвращает nil при совпадении
// и ErrDenied при расхождении. Вызывается ДО применения мутации.
func Verify(ownerID, actingID int64) error {
	if ownerID != actingID {
		return ErrDenied
	}
	return nil
}
