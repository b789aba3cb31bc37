package deck

// Theme controls deck coloring and font only. The set is closed;
// unknown names resolve to Minimalist.
type Theme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	TitleColor string `yaml:"title_color"`
	Font       string `yaml:"font"`
}

var themes = map[string]Theme{
	"Minimalist": {
		Name:       "Minimalist",
		Background: "#FFFFFF",
		TitleColor: "#000000",
		Font:       "Arial",
	},
	"Corporate": {
		Name:       "Corporate",
		Background: "#F5F5F5",
		TitleColor: "#003366",
		Font:       "Calibri",
	},
	"Chalkboard": {
		Name:       "Chalkboard",
		Background: "#1C1C1C",
		TitleColor: "#FFFFFF",
		Font:       "Comic Sans MS",
	},
}

func ThemeByName(name string) Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes["Minimalist"]
}
