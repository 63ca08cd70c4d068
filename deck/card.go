package deck

// Kind classifies a build card.
type Kind string

const (
	Location Kind = "Location"
	Industry Kind = "Industry"
	Wild     Kind = "Wild"
)

// Card represents a build card. City is set for Location cards and
// IndustryName for Industry cards; Wild cards carry no payload.
type Card struct {
	ID           string `json:"id"`
	Kind         Kind   `json:"kind"`
	City         string `json:"city,omitempty"`
	IndustryName string `json:"industry,omitempty"`
}

func (c Card) String() string {
	switch c.Kind {
	case Location:
		return "Location: " + c.City
	case Industry:
		return "Industry: " + c.IndustryName
	case Wild:
		return "Wild"
	}
	return c.ID
}
