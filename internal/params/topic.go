package params

import (
	"hedera-agent-go/internal/hedera"
)

// CreateTopic creates a consensus topic. The admin key defaults to the
// caller's key; a submit key is only set when IsSubmitKey is true.
type CreateTopic struct {
	TopicMemo   string            `json:"topic_memo,omitempty"`
	IsSubmitKey bool              `json:"is_submit_key,omitempty" jsonschema:"description=Restrict message submission to the caller's key"`
	Scheduling  *SchedulingParams `json:"scheduling_params,omitempty"`
}

// CreateTopicNormalised is ready for a topic-create transaction.
type CreateTopicNormalised struct {
	Memo       string                `json:"memo,omitempty"`
	AdminKey   *hedera.PublicKey     `json:"adminKey,omitempty"`
	SubmitKey  *hedera.PublicKey     `json:"submitKey,omitempty"`
	Scheduling *SchedulingNormalised `json:"-"`
}

// UpdateTopic changes a topic's memo or keys.
type UpdateTopic struct {
	TopicID    string            `json:"topic_id" validate:"required"`
	TopicMemo  *string           `json:"topic_memo,omitempty"`
	AdminKey   any               `json:"admin_key,omitempty"`
	SubmitKey  any               `json:"submit_key,omitempty"`
	Scheduling *SchedulingParams `json:"scheduling_params,omitempty"`
}

// UpdateTopicNormalised is ready for a topic-update transaction.
type UpdateTopicNormalised struct {
	TopicID    hedera.TopicID        `json:"topicId"`
	Memo       *string               `json:"memo,omitempty"`
	AdminKey   *hedera.PublicKey     `json:"adminKey,omitempty"`
	SubmitKey  *hedera.PublicKey     `json:"submitKey,omitempty"`
	Scheduling *SchedulingNormalised `json:"-"`
}

// DeleteTopic removes a topic.
type DeleteTopic struct {
	TopicID string `json:"topic_id" validate:"required"`
}

// DeleteTopicNormalised is ready for a topic-delete transaction.
type DeleteTopicNormalised struct {
	TopicID hedera.TopicID `json:"topicId"`
}

// SubmitTopicMessage posts a message to a topic.
type SubmitTopicMessage struct {
	TopicID         string            `json:"topic_id" validate:"required"`
	Message         string            `json:"message" validate:"required"`
	TransactionMemo string            `json:"transaction_memo,omitempty"`
	Scheduling      *SchedulingParams `json:"scheduling_params,omitempty"`
}

// SubmitTopicMessageNormalised is ready for a message-submit transaction.
type SubmitTopicMessageNormalised struct {
	TopicID         hedera.TopicID        `json:"topicId"`
	Message         string                `json:"message"`
	TransactionMemo string                `json:"transactionMemo,omitempty"`
	Scheduling      *SchedulingNormalised `json:"-"`
}
