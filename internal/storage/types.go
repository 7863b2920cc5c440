package storage

// CandidateRecord представляет анкету кандидата.
// Поля заполняются строго в порядке шагов анкеты, каждое один раз.
type CandidateRecord struct {
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Experience      int      `json:"experience"`
	DesiredPosition string   `json:"desired_position"`
	CurrentLocation string   `json:"current_location"`
	TechStack       []string `json:"tech_stack"`
}
