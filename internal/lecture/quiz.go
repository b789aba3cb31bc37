package lecture

import "log/slog"

// NormalizeQuiz maps each item's answer to its index within the options.
// Items whose answer does not match any option are dropped; a single
// malformed question must not fail the whole generation. Relative order
// of retained items is preserved.
func NormalizeQuiz(items []QuizItem) []NormalizedQuizItem {
	normalized := make([]NormalizedQuizItem, 0, len(items))

	for _, item := range items {
		correct := -1
		for i, option := range item.Options {
			if option == item.Answer {
				correct = i
				break
			}
		}
		if correct < 0 {
			slog.Warn("Skipping quiz question with invalid answer", "question", item.Question, "answer", item.Answer)
			continue
		}

		normalized = append(normalized, NormalizedQuizItem{
			Question: item.Question,
			Options:  item.Options,
			Correct:  correct,
		})
	}

	return normalized
}
