// Package deck builds the themed presentation document and persists it
// as a YAML file, which the rasterizer later reads back slide by slide.
package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lecturecast/internal/lecture"
)

type Slide struct {
	Title   string   `yaml:"title"`
	Bullets []string `yaml:"bullets"`
}

type Deck struct {
	Theme  Theme   `yaml:"theme"`
	Slides []Slide `yaml:"slides"`
}

// Build renders the slide specs into a deck document, one bullet per
// content string, in input order.
func Build(slides []lecture.Slide, themeName string) *Deck {
	d := &Deck{
		Theme:  ThemeByName(themeName),
		Slides: make([]Slide, 0, len(slides)),
	}

	for _, s := range slides {
		bullets := make([]string, 0, len(s.Content))
		for _, point := range s.Content {
			bullets = append(bullets, "• "+point)
		}
		d.Slides = append(d.Slides, Slide{Title: s.Title, Bullets: bullets})
	}

	return d
}

// Save persists the deck, creating the parent directory if absent.
func (d *Deck) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create deck directory: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal deck: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}

	return nil
}

func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	return &d, nil
}
