// Package corpus holds the fixed sample data the generation pipeline
// cycles through.
package corpus

// Entry is one sample support message.
type Entry struct {
	Text     string
	Category string
	UserID   string
}

var samples = []Entry{
	{Text: "How do I reset my password?", Category: "account", UserID: "user-001"},
	{Text: "My account is locked", Category: "account", UserID: "user-002"},
	{Text: "Cannot access my dashboard", Category: "technical", UserID: "user-003"},
	{Text: "Billing invoice question", Category: "billing", UserID: "user-004"},
	{Text: "How to upgrade my plan?", Category: "billing", UserID: "user-005"},
	{Text: "API rate limit exceeded", Category: "technical", UserID: "user-006"},
	{Text: "Integration not working", Category: "technical", UserID: "user-007"},
	{Text: "Need help with setup", Category: "support", UserID: "user-008"},
	{Text: "Feature request for export", Category: "feature", UserID: "user-009"},
	{Text: "Data export failed", Category: "technical", UserID: "user-010"},
}

// Size returns the number of sample entries.
func Size() int {
	return len(samples)
}

// At returns the entry at index i, wrapping around the corpus.
func At(i int) Entry {
	return samples[i%len(samples)]
}
