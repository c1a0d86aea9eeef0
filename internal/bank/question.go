package bank

// Question is a single flashcard in the bank.
type Question struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Category is a real category derived by grouping the bank.
type Category struct {
	Name  string `json:"id"`
	Count int    `json:"count"`
}
