package gadget

// Gadget is a tool in the developer's utility belt. IDs are short slugs
// chosen by the author or generated on creation.
type Gadget struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// DefaultIcon is the icon preselected for new gadgets.
const DefaultIcon = "🔧"
