package skill

// Skill is a named proficiency rendered as a power bar. Level is not
// clamped; values outside 0..100 are stored as given.
type Skill struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Color string `json:"color"`
}

// DefaultColor is the color token preselected for new skills.
const DefaultColor = "bg-comic-accent"

// Colors lists the color tokens offered by the editor.
var Colors = []string{
	"bg-comic-accent",
	"bg-comic-secondary",
	"bg-comic-alert",
	"bg-green-400",
	"bg-red-500",
}
