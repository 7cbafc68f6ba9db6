package models

// ChangeCategory is the closed set of changelog sections. Commit types that
// don't map to a feature or fix land in CategoryOther rather than failing.
type ChangeCategory int

const (
	CategoryFeature ChangeCategory = iota
	CategoryFix
	CategoryOther
)

// Categories lists all categories in their fixed changelog order
var Categories = []ChangeCategory{CategoryFeature, CategoryFix, CategoryOther}

// Heading returns the changelog section heading for this category
func (c ChangeCategory) Heading() string {
	switch c {
	case CategoryFeature:
		return "Features"
	case CategoryFix:
		return "Fixes"
	default:
		return "Other"
	}
}

func (c ChangeCategory) String() string {
	return c.Heading()
}
