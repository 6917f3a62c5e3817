package mqtt

import "strings"

const TopicSeparator = "/"

// TrimTopic trims TopicSeparator from the start and end of the specified topic.
func TrimTopic(topic string) string {
	return strings.Trim(topic, TopicSeparator)
}

// JoinTopic trims each part and joins the non-empty ones with TopicSeparator.
func JoinTopic(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = TrimTopic(part); part != "" {
			joined = append(joined, part)
		}
	}

	return strings.Join(joined, TopicSeparator)
}
