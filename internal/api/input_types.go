package api

type profilePayload struct {
	ID   string `json:"id" validate:"omitempty,uuid"`
	Name string `json:"name" validate:"required"`
}

type exerciseLogPayload struct {
	UserID    string `json:"user_id" validate:"omitempty,uuid"`
	Timestamp string `json:"timestamp"`
}
