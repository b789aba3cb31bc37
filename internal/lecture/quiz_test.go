package lecture

import "testing"

func TestNormalizeQuiz(t *testing.T) {
	items := []QuizItem{
		{Question: "first", Options: []string{"a", "b", "c"}, Answer: "b"},
		{Question: "second", Options: []string{"x", "y"}, Answer: "x"},
	}

	got := NormalizeQuiz(items)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Correct != 1 {
		t.Errorf("first Correct = %d, want 1", got[0].Correct)
	}
	if got[1].Correct != 0 {
		t.Errorf("second Correct = %d, want 0", got[1].Correct)
	}
}

func TestNormalizeQuizDropsInvalidAnswer(t *testing.T) {
	items := []QuizItem{
		{Question: "bad", Options: []string{"a", "b"}, Answer: "z"},
		{Question: "good", Options: []string{"a", "b"}, Answer: "a"},
		{Question: "case mismatch", Options: []string{"Paris", "Rome"}, Answer: "paris"},
	}

	got := NormalizeQuiz(items)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Question != "good" {
		t.Errorf("Question = %q, want good", got[0].Question)
	}
}

func TestNormalizeQuizEmpty(t *testing.T) {
	got := NormalizeQuiz(nil)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
