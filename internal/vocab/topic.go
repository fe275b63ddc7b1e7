package vocab

import (
	"fmt"
	"strings"
)

// Topic is one of the fixed subject areas a word list can be generated for.
type Topic string

const (
	TopicDailyLife  Topic = "daily-life"
	TopicTravel     Topic = "travel"
	TopicFood       Topic = "food"
	TopicBusiness   Topic = "business"
	TopicTechnology Topic = "technology"
	TopicNature     Topic = "nature"
	TopicEmotions   Topic = "emotions"
)

// AllTopics returns every topic in display order.
func AllTopics() []Topic {
	return []Topic{
		TopicDailyLife,
		TopicTravel,
		TopicFood,
		TopicBusiness,
		TopicTechnology,
		TopicNature,
		TopicEmotions,
	}
}

// DisplayName returns a human-readable name for the topic.
func (t Topic) DisplayName() string {
	switch t {
	case TopicDailyLife:
		return "Daily Life"
	case TopicTravel:
		return "Travel"
	case TopicFood:
		return "Food & Cooking"
	case TopicBusiness:
		return "Business"
	case TopicTechnology:
		return "Technology"
	case TopicNature:
		return "Nature"
	case TopicEmotions:
		return "Emotions"
	default:
		return string(t)
	}
}

// Level is a difficulty label for a generated word list.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns every level from easiest to hardest.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// DisplayName returns the level label shown to the learner.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Beginner (초급)"
	case LevelIntermediate:
		return "Intermediate (중급)"
	case LevelAdvanced:
		return "Advanced (고급)"
	default:
		return string(l)
	}
}

// ParseTopic matches s against topic IDs and display names, ignoring case.
func ParseTopic(s string) (Topic, error) {
	s = strings.TrimSpace(s)
	for _, t := range AllTopics() {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.DisplayName()) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic %q", s)
}

// ParseLevel matches s against level IDs, ignoring case.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, l := range AllLevels() {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q: must be beginner, intermediate or advanced", s)
}

// IndexOfTopic returns the display position of t, or 0 when t is unknown.
func IndexOfTopic(t Topic) int {
	for i, x := range AllTopics() {
		if x == t {
			return i
		}
	}
	return 0
}

// IndexOfLevel returns the position of l, or 0 when l is unknown.
func IndexOfLevel(l Level) int {
	for i, x := range AllLevels() {
		if x == l {
			return i
		}
	}
	return 0
}
