package view

type Toast struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}
