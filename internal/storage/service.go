package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultDir — каталог записей по умолчанию
const DefaultDir = "candidate_data"

// Service сохраняет завершенные анкеты в плоские текстовые файлы
type Service struct {
	dir string
}

// New создает хранилище записей в указанном каталоге
func New(dir string) *Service {
	if dir == "" {
		dir = DefaultDir
	}
	return &Service{dir: dir}
}

// SaveCandidate записывает анкету и средний балл в новый файл.
// Имя файла собирается из полного имени и таймштампа, что дает
// уникальность в пределах секунды. Возвращает путь к файлу.
func (s *Service) SaveCandidate(record *CandidateRecord, averageScore float64) (string, error) {
	// Создаем каталог если его нет
	err := os.MkdirAll(s.dir, 0755)
	if err != nil {
		return "", fmt.Errorf("ошибка создания каталога %s: %w", s.dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt",
		strings.ReplaceAll(record.FullName, " ", "_"),
		time.Now().Format("20060102_150405"))
	path := filepath.Join(s.dir, filename)

	var b strings.Builder
	b.WriteString("Candidate Information:\n")
	b.WriteString(fmt.Sprintf("Full_name: %s\n", record.FullName))
	b.WriteString(fmt.Sprintf("Email: %s\n", record.Email))
	b.WriteString(fmt.Sprintf("Phone: %s\n", record.Phone))
	b.WriteString(fmt.Sprintf("Experience: %d\n", record.Experience))
	b.WriteString(fmt.Sprintf("Desired_position: %s\n", record.DesiredPosition))
	b.WriteString(fmt.Sprintf("Current_location: %s\n", record.CurrentLocation))
	b.WriteString(fmt.Sprintf("Tech_stack: %s\n", strings.Join(record.TechStack, ", ")))
	b.WriteString(fmt.Sprintf("Average Score: %.2f\n", averageScore))

	err = os.WriteFile(path, []byte(b.String()), 0644)
	if err != nil {
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}

	return path, nil
}

// ListRecords возвращает имена всех сохраненных анкет
func (s *Service) ListRecords() ([]string, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения каталога %s: %w", s.dir, err)
	}

	var records []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".txt" {
			records = append(records, entry.Name())
		}
	}

	return records, nil
}
