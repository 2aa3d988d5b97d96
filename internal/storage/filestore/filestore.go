// Пакет filestore — хранилище загруженных файлов на диске.
// Отвечает за генерацию устойчивых к коллизиям имён, атомарную запись
// и идемпотентное удаление. Запись в БД, ссылающаяся на файл, создаётся
// только после успешного сохранения файла.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore — управление файлами в директории загрузок.
type FileStore struct {
	// dataDir — корневая директория хранения файлов (TB_UPLOAD_DIR)
	dataDir string
}

// SaveResult — результат сохранения файла на диск.
type SaveResult struct {
	// StoredName — сгенерированное имя файла в dataDir.
	// Именно оно сохраняется в колонках file_path / profile_pic.
	StoredName string
	// FullPath — абсолютный путь файла на диске
	FullPath string
	// Size — размер записанных данных в байтах
	Size int64
}

// New создаёт новый FileStore. Создаёт директорию, если она не существует,
// гарантируя доступность хранилища до первой загрузки.
func New(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию загрузок %s: %w", dataDir, err)
	}

	return &FileStore{dataDir: dataDir}, nil
}

// Save записывает данные из reader на диск под сгенерированным именем.
// Формат имени: {unix-millis}_{короткий-uuid}{ext} — временная метка
// плюс случайный суффикс исключают перезапись существующего файла.
//
// Паттерн: temp файл → запись → fsync → atomic rename.
// При ошибке temp файл удаляется, на диске ничего не остаётся.
func (fs *FileStore) Save(reader io.Reader, originalName string) (*SaveResult, error) {
	storedName := generateStoredName(originalName)
	fullPath := filepath.Join(fs.dataDir, storedName)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания временного файла: %w", err)
	}

	size, err := io.Copy(f, reader)
	if err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("ошибка записи данных: %w", err)
	}

	// fsync для гарантии записи на диск
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("ошибка fsync: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("ошибка закрытия файла: %w", err)
	}

	// Атомарный rename
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("ошибка атомарного переименования: %w", err)
	}

	return &SaveResult{
		StoredName: storedName,
		FullPath:   fullPath,
		Size:       size,
	}, nil
}

// Delete удаляет файл с диска. Вызывается только после того, как
// ссылающаяся на файл запись БД уже удалена или заменена.
// Возвращает nil, если файл уже не существует (идемпотентное удаление).
func (fs *FileStore) Delete(storedName string) error {
	fullPath, err := fs.resolve(storedName)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления файла %s: %w", storedName, err)
	}
	return nil
}

// Exists проверяет существование файла в хранилище.
func (fs *FileStore) Exists(storedName string) bool {
	fullPath, err := fs.resolve(storedName)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}

// FullPath возвращает абсолютный путь к файлу на диске.
func (fs *FileStore) FullPath(storedName string) string {
	return filepath.Join(fs.dataDir, storedName)
}

// DataDir возвращает путь к директории загрузок.
func (fs *FileStore) DataDir() string {
	return fs.dataDir
}

// resolve проверяет, что имя не выводит за пределы dataDir.
// Имена генерируются самим хранилищем, но Delete/Exists принимают
// строку из БД — разделители пути в ней недопустимы.
func (fs *FileStore) resolve(storedName string) (string, error) {
	if storedName == "" ||
		strings.ContainsRune(storedName, '/') ||
		strings.ContainsRune(storedName, '\\') ||
		storedName != filepath.Base(storedName) {
		return "", fmt.Errorf("недопустимое имя файла: %q", storedName)
	}
	return filepath.Join(fs.dataDir, storedName), nil
}

// generateStoredName генерирует имя файла для хранения на диске.
// Формат: {unix-millis}_{uuid8}{ext}. Расширение берётся из
// оригинального имени, всё остальное отбрасывается.
func generateStoredName(originalName string) string {
	ext := filepath.Ext(originalName)
	ts := time.Now().UnixMilli()
	uid := uuid.New().String()[:8] // Короткий UUID для уникальности

	return fmt.Sprintf("%d_%s%s", ts, uid, ext)
}
