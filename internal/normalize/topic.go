package normalize

import (
	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/params"
	"hedera-agent-go/internal/resolve"
)

// CreateTopic sets the admin key to the caller's key when one is available
// and sets a submit key only when message submission should be restricted.
func CreateTopic(raw params.CreateTopic, agent *config.Context, client hedera.Client) (*params.CreateTopicNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	out := &params.CreateTopicNormalised{Memo: raw.TopicMemo}
	if key, err := resolve.DefaultPublicKey(agent, client); err == nil {
		out.AdminKey = &key
	}
	if raw.IsSubmitKey {
		key, err := resolve.DefaultPublicKey(agent, client)
		if err != nil {
			return nil, err
		}
		out.SubmitKey = &key
	}
	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	out.Scheduling = sched
	return out, nil
}

// UpdateTopic resolves the key directives; unset pointer fields stay
// untouched on the ledger.
func UpdateTopic(raw params.UpdateTopic, agent *config.Context, client hedera.Client) (*params.UpdateTopicNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	topicID, err := hedera.ParseTopicID(raw.TopicID)
	if err != nil {
		return nil, err
	}
	userKey, _ := resolve.DefaultPublicKey(agent, client)
	adminKey, err := keySlot(raw.AdminKey, userKey)
	if err != nil {
		return nil, err
	}
	submitKey, err := keySlot(raw.SubmitKey, userKey)
	if err != nil {
		return nil, err
	}
	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.UpdateTopicNormalised{
		TopicID:    topicID,
		Memo:       raw.TopicMemo,
		AdminKey:   adminKey,
		SubmitKey:  submitKey,
		Scheduling: sched,
	}, nil
}

// DeleteTopic parses the target topic id.
func DeleteTopic(raw params.DeleteTopic) (*params.DeleteTopicNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	topicID, err := hedera.ParseTopicID(raw.TopicID)
	if err != nil {
		return nil, err
	}
	return &params.DeleteTopicNormalised{TopicID: topicID}, nil
}

// SubmitTopicMessage parses the target topic id and carries the message
// through unchanged.
func SubmitTopicMessage(raw params.SubmitTopicMessage, agent *config.Context, client hedera.Client) (*params.SubmitTopicMessageNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	topicID, err := hedera.ParseTopicID(raw.TopicID)
	if err != nil {
		return nil, err
	}
	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.SubmitTopicMessageNormalised{
		TopicID:         topicID,
		Message:         raw.Message,
		TransactionMemo: raw.TransactionMemo,
		Scheduling:      sched,
	}, nil
}
