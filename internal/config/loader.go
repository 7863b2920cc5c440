package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load загружает справочники анкеты из YAML файла
func Load(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	var catalog Catalog
	err = yaml.Unmarshal(data, &catalog)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация справочников
	err = validateCatalog(&catalog)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации справочников: %w", err)
	}

	return &catalog, nil
}

// validateCatalog проверяет корректность справочников
func validateCatalog(catalog *Catalog) error {
	if len(catalog.CountryCodes) == 0 {
		return fmt.Errorf("country_codes не должен быть пустым")
	}

	for i, cc := range catalog.CountryCodes {
		if cc.Code == "" || cc.Code[0] != '+' {
			return fmt.Errorf("код страны %d должен начинаться с '+': %q", i, cc.Code)
		}
		if cc.Country == "" {
			return fmt.Errorf("код страны %s должен иметь country", cc.Code)
		}
	}

	if len(catalog.Positions) == 0 {
		return fmt.Errorf("positions не должен быть пустым")
	}

	if len(catalog.TechStack) == 0 {
		return fmt.Errorf("tech_stack не должен быть пустым")
	}

	for i, category := range catalog.TechStack {
		if category.Name == "" {
			return fmt.Errorf("категория %d должна иметь name", i)
		}

		if category.Title == "" {
			return fmt.Errorf("категория %q должна иметь title", category.Name)
		}

		if len(category.Options) == 0 {
			return fmt.Errorf("категория %q должна иметь options", category.Name)
		}
	}

	return nil
}
