// Package hedera holds the ledger-facing domain types the kit exchanges with
// a Hedera client: entity identifiers, tinybar amounts, public keys,
// transaction ids and the transaction body model. The consensus client
// itself is consumed through the narrow Client interface in client.go.
package hedera

import (
	"fmt"
	"strconv"
	"strings"

	xerrors "hedera-agent-go/internal/errors"
)

// IsValidAddress reports whether s is a canonical shard.realm.num address.
func IsValidAddress(s string) bool {
	_, _, _, err := splitAddress(s)
	return err == nil
}

func splitAddress(s string) (shard, realm, num uint64, err error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected shard.realm.num, got %q", s)
	}
	values := make([]uint64, 3)
	for i, part := range parts {
		v, parseErr := strconv.ParseUint(part, 10, 64)
		if parseErr != nil {
			return 0, 0, 0, fmt.Errorf("expected shard.realm.num, got %q", s)
		}
		values[i] = v
	}
	return values[0], values[1], values[2], nil
}

func formatAddress(shard, realm, num uint64) string {
	return fmt.Sprintf("%d.%d.%d", shard, realm, num)
}

// AccountID identifies an account on the ledger.
type AccountID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseAccountID parses a shard.realm.num account address.
func ParseAccountID(s string) (AccountID, error) {
	shard, realm, num, err := splitAddress(s)
	if err != nil {
		return AccountID{}, xerrors.Wrap(xerrors.CodeInvalidAddress, err, "invalid account id")
	}
	return AccountID{Shard: shard, Realm: realm, Num: num}, nil
}

func (a AccountID) String() string { return formatAddress(a.Shard, a.Realm, a.Num) }

// IsZero reports whether the id is the zero value.
func (a AccountID) IsZero() bool { return a == AccountID{} }

// TokenID identifies a fungible or non-fungible token class.
type TokenID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseTokenID parses a shard.realm.num token address.
func ParseTokenID(s string) (TokenID, error) {
	shard, realm, num, err := splitAddress(s)
	if err != nil {
		return TokenID{}, xerrors.Wrap(xerrors.CodeInvalidAddress, err, "invalid token id")
	}
	return TokenID{Shard: shard, Realm: realm, Num: num}, nil
}

func (t TokenID) String() string { return formatAddress(t.Shard, t.Realm, t.Num) }

func (t TokenID) IsZero() bool { return t == TokenID{} }

// TopicID identifies a consensus topic.
type TopicID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseTopicID parses a shard.realm.num topic address.
func ParseTopicID(s string) (TopicID, error) {
	shard, realm, num, err := splitAddress(s)
	if err != nil {
		return TopicID{}, xerrors.Wrap(xerrors.CodeInvalidAddress, err, "invalid topic id")
	}
	return TopicID{Shard: shard, Realm: realm, Num: num}, nil
}

func (t TopicID) String() string { return formatAddress(t.Shard, t.Realm, t.Num) }

func (t TopicID) IsZero() bool { return t == TopicID{} }

// ContractID identifies a smart contract instance.
type ContractID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseContractID parses a shard.realm.num contract address.
func ParseContractID(s string) (ContractID, error) {
	shard, realm, num, err := splitAddress(s)
	if err != nil {
		return ContractID{}, xerrors.Wrap(xerrors.CodeInvalidAddress, err, "invalid contract id")
	}
	return ContractID{Shard: shard, Realm: realm, Num: num}, nil
}

func (c ContractID) String() string { return formatAddress(c.Shard, c.Realm, c.Num) }

func (c ContractID) IsZero() bool { return c == ContractID{} }

// ScheduleID identifies a scheduled transaction entity.
type ScheduleID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseScheduleID parses a shard.realm.num schedule address.
func ParseScheduleID(s string) (ScheduleID, error) {
	shard, realm, num, err := splitAddress(s)
	if err != nil {
		return ScheduleID{}, xerrors.Wrap(xerrors.CodeInvalidAddress, err, "invalid schedule id")
	}
	return ScheduleID{Shard: shard, Realm: realm, Num: num}, nil
}

func (s ScheduleID) String() string { return formatAddress(s.Shard, s.Realm, s.Num) }

func (s ScheduleID) IsZero() bool { return s == ScheduleID{} }
