package mirrornode

import "encoding/base64"

// DecodeMessages returns a copy of messages with the base64 message bodies
// decoded to UTF-8. Entries that fail to decode keep their original content.
// When encoding is "base64" the input is returned unchanged.
func DecodeMessages(messages []TopicMessage, encoding string) []TopicMessage {
	if encoding == "base64" {
		return messages
	}
	decoded := make([]TopicMessage, len(messages))
	for i, message := range messages {
		decoded[i] = message
		if content, err := base64.StdEncoding.DecodeString(message.Message); err == nil {
			decoded[i].Message = string(content)
		}
	}
	return decoded
}

// DecodeMessage decodes a single base64 message body, returning the input
// unchanged when it is not valid base64.
func DecodeMessage(message string) string {
	content, err := base64.StdEncoding.DecodeString(message)
	if err != nil {
		return message
	}
	return string(content)
}
