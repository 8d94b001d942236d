package domain

import "time"

// Section is one subtopic of a roadmap with its ordered sub-items
type Section struct {
	Name  string
	Items []string
}

// Outline is a structured roadmap for a topic. Sections keep the order
// the content service returned them in.
type Outline struct {
	Topic    string
	Sections []Section
}

// TopicInfo is a roadmap reference in a user's topic list
type TopicInfo struct {
	Topic     string
	Timestamp time.Time
}
