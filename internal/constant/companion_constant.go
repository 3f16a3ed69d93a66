package constant

// Entitlements reported by the identity provider that gate companion creation.
const (
	PlanPro                  = "pro"
	FeatureThreeCompanionCap = "3_companion_limit"
	FeatureTenCompanionCap   = "10_companion_limit"
)

const (
	DefaultCompanionPageSize = 10
	MaxCompanionPageSize     = 100
	DefaultCompanionPage     = 1
	DefaultSessionLimit      = 10
	DefaultCompanionColor    = "#E5E5E5"
)

// SubjectColors is the card palette keyed by lower-cased subject.
var SubjectColors = map[string]string{
	"science":   "#E5D0FF",
	"maths":     "#FFDA6E",
	"language":  "#BDE7FF",
	"coding":    "#FFC8E4",
	"history":   "#FFECC8",
	"economics": "#C8FFDF",
}
