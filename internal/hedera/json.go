package hedera

import "encoding/json"

// Entity ids, keys and amounts serialize to their canonical textual forms so
// signable transaction bytes and transport dictionaries stay readable and
// stable.

func (a AccountID) MarshalJSON() ([]byte, error)     { return json.Marshal(a.String()) }
func (t TokenID) MarshalJSON() ([]byte, error)       { return json.Marshal(t.String()) }
func (t TopicID) MarshalJSON() ([]byte, error)       { return json.Marshal(t.String()) }
func (c ContractID) MarshalJSON() ([]byte, error)    { return json.Marshal(c.String()) }
func (s ScheduleID) MarshalJSON() ([]byte, error)    { return json.Marshal(s.String()) }
func (t TransactionID) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (h Hbar) MarshalJSON() ([]byte, error) { return json.Marshal(h.Tinybars()) }

func (k PublicKey) MarshalJSON() ([]byte, error) { return json.Marshal(k.StringDER()) }

func (a *AccountID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAccountID(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (t *TokenID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTokenID(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t *TopicID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTopicID(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (h *Hbar) UnmarshalJSON(data []byte) error {
	var tinybars int64
	if err := json.Unmarshal(data, &tinybars); err != nil {
		return err
	}
	h.tinybars = tinybars
	return nil
}

func (k *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*k = PublicKey{}
		return nil
	}
	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
