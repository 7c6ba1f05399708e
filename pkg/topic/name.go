package topic

import (
	"fmt"
	"regexp"
	"strings"
)

var topicNameRegex = regexp.MustCompile("^[^#+]+$")

type TopicName struct {
	Value string `json:"value"`
}

func NewName(value string) (*TopicName, error) {
	if value == "" {
		return nil, fmt.Errorf("topic name: %s cannot be empty", value)
	}

	if len(value) > 65535 {
		return nil, fmt.Errorf("topic name: %s cannot be have more than 65535 bytes", value)
	}

	if !topicNameRegex.MatchString(value) {
		return nil, fmt.Errorf("topic name: %s format is invalid", value)
	}

	return &TopicName{value}, nil
}

// Join builds a name from slash separated segments, e.g. Join("todos", id).
func Join(segments ...string) (*TopicName, error) {
	return NewName(strings.Join(segments, "/"))
}

func (t *TopicName) String() string {
	return t.Value
}
