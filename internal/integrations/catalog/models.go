package catalog

// Service услуга из каталога
type Service struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration"`
	ServiceType     string `json:"serviceType"`
}

// queryResponse ответ query API Sanity
type queryResponse struct {
	Result *Service `json:"result"`
	MS     int      `json:"ms"`
}

// errorResponse ошибка query API Sanity
type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
}
