// Package response models what tools hand back to the agent runtime: an
// executed transaction summary, serialized transaction bytes awaiting an
// external signature, or a plain text result. Responses round-trip through
// plain maps so they survive any JSON transport losslessly.
package response

import (
	"encoding/hex"
	"encoding/json"

	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
)

// Type discriminates the response payload in its map form.
type Type string

const (
	TypeExecutedTransaction Type = "executed_transaction"
	TypeReturnBytes         Type = "return_bytes"
	TypeGeneric             Type = "generic"
)

// RawTransactionOutcome summarizes a consensus receipt. Entity ids are set
// only when the transaction created the corresponding entity.
type RawTransactionOutcome struct {
	Status        string
	AccountID     *hedera.AccountID
	TokenID       *hedera.TokenID
	TopicID       *hedera.TopicID
	ScheduleID    *hedera.ScheduleID
	ContractID    *hedera.ContractID
	TransactionID string
	SerialNumbers []int64
	Error         string
}

// OutcomeFromReceipt copies the receipt fields into an outcome record.
func OutcomeFromReceipt(receipt *hedera.Receipt) *RawTransactionOutcome {
	return &RawTransactionOutcome{
		Status:        string(receipt.Status),
		AccountID:     receipt.AccountID,
		TokenID:       receipt.TokenID,
		TopicID:       receipt.TopicID,
		ScheduleID:    receipt.ScheduleID,
		ContractID:    receipt.ContractID,
		TransactionID: receipt.TransactionID.String(),
		SerialNumbers: receipt.SerialNumbers,
	}
}

// ToDict flattens the outcome into a JSON-friendly map. Absent entity ids
// are omitted rather than rendered as empty strings.
func (r *RawTransactionOutcome) ToDict() map[string]any {
	out := map[string]any{
		"status":        r.Status,
		"transactionId": r.TransactionID,
	}
	if r.AccountID != nil {
		out["accountId"] = r.AccountID.String()
	}
	if r.TokenID != nil {
		out["tokenId"] = r.TokenID.String()
	}
	if r.TopicID != nil {
		out["topicId"] = r.TopicID.String()
	}
	if r.ScheduleID != nil {
		out["scheduleId"] = r.ScheduleID.String()
	}
	if r.ContractID != nil {
		out["contractId"] = r.ContractID.String()
	}
	if len(r.SerialNumbers) > 0 {
		out["serialNumbers"] = r.SerialNumbers
	}
	if r.Error != "" {
		out["error"] = r.Error
	}
	return out
}

// OutcomeFromDict rebuilds an outcome from its map form.
func OutcomeFromDict(data map[string]any) (*RawTransactionOutcome, error) {
	out := &RawTransactionOutcome{
		Status:        stringAt(data, "status"),
		TransactionID: stringAt(data, "transactionId"),
		Error:         stringAt(data, "error"),
	}
	if s := stringAt(data, "accountId"); s != "" {
		id, err := hedera.ParseAccountID(s)
		if err != nil {
			return nil, err
		}
		out.AccountID = &id
	}
	if s := stringAt(data, "tokenId"); s != "" {
		id, err := hedera.ParseTokenID(s)
		if err != nil {
			return nil, err
		}
		out.TokenID = &id
	}
	if s := stringAt(data, "topicId"); s != "" {
		id, err := hedera.ParseTopicID(s)
		if err != nil {
			return nil, err
		}
		out.TopicID = &id
	}
	if s := stringAt(data, "scheduleId"); s != "" {
		id, err := hedera.ParseScheduleID(s)
		if err != nil {
			return nil, err
		}
		out.ScheduleID = &id
	}
	if s := stringAt(data, "contractId"); s != "" {
		id, err := hedera.ParseContractID(s)
		if err != nil {
			return nil, err
		}
		out.ContractID = &id
	}
	if serials, ok := data["serialNumbers"].([]int64); ok {
		out.SerialNumbers = serials
	} else if raw, ok := data["serialNumbers"].([]any); ok {
		for _, v := range raw {
			switch n := v.(type) {
			case int64:
				out.SerialNumbers = append(out.SerialNumbers, n)
			case float64:
				out.SerialNumbers = append(out.SerialNumbers, int64(n))
			}
		}
	}
	return out, nil
}

// ToolResponse is what every tool returns. Exactly one payload field is set,
// matching the response type.
type ToolResponse struct {
	Type         Type
	HumanMessage string
	Error        string
	Raw          *RawTransactionOutcome
	Bytes        []byte
	Extra        map[string]any
}

// Executed wraps a consensus outcome with its human-readable summary.
func Executed(humanMessage string, raw *RawTransactionOutcome) *ToolResponse {
	return &ToolResponse{Type: TypeExecutedTransaction, HumanMessage: humanMessage, Raw: raw}
}

// ReturnBytes wraps serialized signable transaction bytes.
func ReturnBytes(humanMessage string, data []byte) *ToolResponse {
	return &ToolResponse{Type: TypeReturnBytes, HumanMessage: humanMessage, Bytes: data}
}

// Generic wraps a plain text result, typically from a query tool.
func Generic(humanMessage string) *ToolResponse {
	return &ToolResponse{Type: TypeGeneric, HumanMessage: humanMessage}
}

// Failure wraps an error message; the message doubles as the human-readable
// result so the agent can surface it directly.
func Failure(message string) *ToolResponse {
	return &ToolResponse{Type: TypeGeneric, HumanMessage: message, Error: message}
}

// WithExtra attaches machine-readable extras to the response.
func (r *ToolResponse) WithExtra(extra map[string]any) *ToolResponse {
	r.Extra = extra
	return r
}

// IsError reports whether the tool failed.
func (r *ToolResponse) IsError() bool { return r.Error != "" }

// ToDict flattens the response into a JSON-friendly map. Bytes are hex
// encoded.
func (r *ToolResponse) ToDict() map[string]any {
	out := map[string]any{
		"type":          string(r.Type),
		"human_message": r.HumanMessage,
	}
	if r.Error != "" {
		out["error"] = r.Error
	}
	switch r.Type {
	case TypeExecutedTransaction:
		if r.Raw != nil {
			out["raw"] = r.Raw.ToDict()
		}
	case TypeReturnBytes:
		out["bytes_data"] = hex.EncodeToString(r.Bytes)
	}
	if len(r.Extra) > 0 {
		out["extra"] = r.Extra
	}
	return out
}

// FromDict rebuilds a response from its map form. An absent or unknown type
// field yields a generic response.
func FromDict(data map[string]any) (*ToolResponse, error) {
	out := &ToolResponse{
		Type:         Type(stringAt(data, "type")),
		HumanMessage: stringAt(data, "human_message"),
		Error:        stringAt(data, "error"),
	}
	switch out.Type {
	case TypeExecutedTransaction:
		rawData, ok := data["raw"].(map[string]any)
		if !ok {
			return nil, xerrors.New(xerrors.CodeInvalidParameters,
				"executed_transaction response is missing its raw outcome")
		}
		raw, err := OutcomeFromDict(rawData)
		if err != nil {
			return nil, err
		}
		out.Raw = raw
	case TypeReturnBytes:
		decoded, err := hex.DecodeString(stringAt(data, "bytes_data"))
		if err != nil {
			return nil, xerrors.Wrap(xerrors.CodeInvalidParameters, err,
				"return_bytes response carries malformed hex")
		}
		out.Bytes = decoded
	default:
		out.Type = TypeGeneric
	}
	if extra, ok := data["extra"].(map[string]any); ok {
		out.Extra = extra
	}
	return out, nil
}

// MarshalJSON renders the map form, keeping the wire shape identical to
// ToDict.
func (r *ToolResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToDict())
}

func stringAt(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
