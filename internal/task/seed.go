package task

// Seed returns the collection used when nothing valid has been stored yet.
func Seed() Collection {
	return Collection{
		{ID: 3, Text: "Water the plants"},
		{ID: 2, Text: "Call the bank", Completed: true},
		{ID: 1, Text: "Buy milk"},
	}
}
