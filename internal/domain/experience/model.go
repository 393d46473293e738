package experience

// Side places an entry on the left or right of the timeline.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Experience is one career timeline entry.
type Experience struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Side        Side   `json:"side"`
}
