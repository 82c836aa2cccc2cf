package mcq

// Fallback returns the fixed general-knowledge set substituted when
// generation fails or parses to fewer than MinQuestions. The slice is built
// fresh on every call so callers can't mutate the bank.
func Fallback() []Question {
	return []Question{
		{
			Text: "What is the primary purpose of version control systems like Git?",
			Options: map[string]string{
				"A": "To compile code",
				"B": "To track changes in code over time",
				"C": "To deploy applications",
				"D": "To test code quality",
			},
			Correct: "B",
		},
		{
			Text: "Which HTTP method is typically used to retrieve data from a server?",
			Options: map[string]string{
				"A": "POST",
				"B": "PUT",
				"C": "GET",
				"D": "DELETE",
			},
			Correct: "C",
		},
		{
			Text: "What does API stand for?",
			Options: map[string]string{
				"A": "Application Programming Interface",
				"B": "Advanced Programming Instructions",
				"C": "Automated Program Integration",
				"D": "Application Process Integration",
			},
			Correct: "A",
		},
		{
			Text: "What is the difference between == and === in JavaScript?",
			Options: map[string]string{
				"A": "No difference",
				"B": "== checks type and value, === checks only value",
				"C": "== checks only value, === checks type and value",
				"D": "=== is used for assignment",
			},
			Correct: "C",
		},
		{
			Text: "Which database type is MongoDB?",
			Options: map[string]string{
				"A": "Relational database",
				"B": "Graph database",
				"C": "Document database (NoSQL)",
				"D": "Key-value database",
			},
			Correct: "C",
		},
	}
}
