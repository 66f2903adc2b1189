package models

type Lesson struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}
