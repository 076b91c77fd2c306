package engine

import (
	"encoding/json"

	"github.com/veridis/sfdr-engine/errors"
)

// Category is an SFDR regulatory classification bucket for a financial
// product's sustainability disclosure posture.
//
// Declaration order doubles as the documented tie-break order for the
// rule-based scorer: when two categories accumulate identical scores,
// the earlier-declared category wins.
type Category int

const (
	// NoPromotion - products that do not promote environmental or
	// social characteristics (Article 6)
	NoPromotion Category = iota
	// PromotesCharacteristics - products that promote environmental or
	// social characteristics (Article 8)
	PromotesCharacteristics
	// SustainableObjective - products that have sustainable investment
	// as their objective (Article 9)
	SustainableObjective
)

// Categories returns all categories in declaration (tie-break) order.
func Categories() []Category {
	return []Category{NoPromotion, PromotesCharacteristics, SustainableObjective}
}

// String returns the SFDR article label
func (c Category) String() string {
	switch c {
	case NoPromotion:
		return "Article 6"
	case PromotesCharacteristics:
		return "Article 8"
	case SustainableObjective:
		return "Article 9"
	default:
		return "Article 6"
	}
}

// MarshalJSON serializes the category as its article label
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses an article label back into a Category
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory converts an article label to a Category
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Article 6", "article 6", "article_6":
		return NoPromotion, nil
	case "Article 8", "article 8", "article_8":
		return PromotesCharacteristics, nil
	case "Article 9", "article 9", "article_9":
		return SustainableObjective, nil
	default:
		return NoPromotion, errors.Newf("unknown SFDR category: %q", s)
	}
}
