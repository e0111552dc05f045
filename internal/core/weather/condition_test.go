package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		category string
		expected ConditionClass
	}{
		{"Clouds", ConditionCloudy},
		{"CLOUDS", ConditionCloudy},
		{"partly cloudy", ConditionCloudy},
		{"Rain", ConditionRainy},
		{"Drizzle", ConditionRainy},
		{"Thunderstorm", ConditionRainy},
		{"Snow", ConditionSnow},
		{"Clear", ConditionClear},
		{"Mist", ConditionSunny},
		{"Haze", ConditionSunny},
		{"Tornado", ConditionSunny},
		{"", ConditionSunny},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.category))
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		category string
		expected ConditionClass
	}{
		{"CloudBeatsClear", "cloudy then clear", ConditionCloudy},
		{"CloudBeatsRain", "rain clouds", ConditionCloudy},
		{"RainBeatsSnow", "snow and rain", ConditionRainy},
		{"DrizzleBeatsClear", "clear with drizzle", ConditionRainy},
		{"SnowBeatsClear", "clearing snow", ConditionSnow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.category))
		})
	}
}

func TestConditionRules_Order(t *testing.T) {
	var classes []ConditionClass
	for _, rule := range ConditionRules {
		classes = append(classes, rule.Class)
	}
	assert.Equal(t, []ConditionClass{ConditionCloudy, ConditionRainy, ConditionSnow, ConditionClear}, classes)
	assert.Equal(t, ConditionSunny, DefaultConditionClass)
}

func TestConditionClass_IsValid(t *testing.T) {
	for _, class := range AllConditionClasses() {
		assert.True(t, class.IsValid(), string(class))
	}
	assert.False(t, ConditionClass("foggy").IsValid())
	assert.False(t, ConditionClass("").IsValid())
}
