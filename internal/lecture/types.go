package lecture

// Spec is the structured output of the content-generation stage.
type Spec struct {
	Slides []Slide    `json:"slides" yaml:"slides"`
	Quiz   []QuizItem `json:"quiz" yaml:"quiz"`
}

// Slide holds one slide's title, bullet content and narration script.
type Slide struct {
	Title   string   `json:"title" yaml:"title"`
	Content []string `json:"content" yaml:"content"`
	Script  string   `json:"script" yaml:"script"`
}

type QuizItem struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Answer   string   `json:"answer" yaml:"answer"`
}

// NormalizedQuizItem replaces the textual answer with its index in Options.
type NormalizedQuizItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}
