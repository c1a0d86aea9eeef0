package flashcard

// refreshMsg re-reads the controller once the card transition has played.
// It carries no state, so a late or duplicated refresh is harmless.
type refreshMsg struct{}
