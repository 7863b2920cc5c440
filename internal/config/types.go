package config

// Catalog представляет справочники анкеты кандидата
type Catalog struct {
	CountryCodes []CountryCode       `yaml:"country_codes"`
	Positions    []string            `yaml:"positions"`
	TechStack    []TechStackCategory `yaml:"tech_stack"`
}

// CountryCode представляет телефонный код страны
type CountryCode struct {
	Code    string `yaml:"code"`
	Country string `yaml:"country"`
}

// TechStackCategory представляет одну категорию технологий
type TechStackCategory struct {
	Name    string   `yaml:"name"`
	Title   string   `yaml:"title"`
	Options []string `yaml:"options"`
}

// Методы для удобного доступа к справочникам

// KnownCountryCode проверяет, есть ли код в справочнике
func (c *Catalog) KnownCountryCode(code string) bool {
	for _, cc := range c.CountryCodes {
		if cc.Code == code {
			return true
		}
	}
	return false
}

// Position возвращает позицию по номеру пункта (нумерация с 1)
func (c *Catalog) Position(number int) (string, bool) {
	if number < 1 || number > len(c.Positions) {
		return "", false
	}
	return c.Positions[number-1], true
}

// KnownPosition проверяет, есть ли позиция в справочнике
func (c *Catalog) KnownPosition(position string) bool {
	for _, p := range c.Positions {
		if p == position {
			return true
		}
	}
	return false
}
