package weather

import "strings"

// ConditionClass is the page background class derived from the provider's category
type ConditionClass string

const (
	ConditionCloudy ConditionClass = "cloudy"
	ConditionRainy  ConditionClass = "rainy"
	ConditionSnow   ConditionClass = "snow"
	ConditionClear  ConditionClass = "clear"
	ConditionSunny  ConditionClass = "sunny"
)

// DefaultConditionClass applies when no rule matches
const DefaultConditionClass = ConditionSunny

// ConditionRule maps any of its keywords to a class
type ConditionRule struct {
	Class    ConditionClass
	Keywords []string
}

// ConditionRules is evaluated top to bottom; the first rule with a keyword
// contained in the lowercased category wins.
var ConditionRules = []ConditionRule{
	{Class: ConditionCloudy, Keywords: []string{"cloud"}},
	{Class: ConditionRainy, Keywords: []string{"rain", "drizzle", "thunderstorm"}},
	{Class: ConditionSnow, Keywords: []string{"snow"}},
	{Class: ConditionClear, Keywords: []string{"clear"}},
}

// AllConditionClasses lists the closed set of classes in rule order
func AllConditionClasses() []ConditionClass {
	return []ConditionClass{ConditionCloudy, ConditionRainy, ConditionSnow, ConditionClear, ConditionSunny}
}

// IsValid reports whether c is one of the known classes
func (c ConditionClass) IsValid() bool {
	for _, known := range AllConditionClasses() {
		if c == known {
			return true
		}
	}
	return false
}

// Classify buckets a provider condition category
func Classify(category string) ConditionClass {
	normalized := strings.ToLower(category)
	for _, rule := range ConditionRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return rule.Class
			}
		}
	}
	return DefaultConditionClass
}
