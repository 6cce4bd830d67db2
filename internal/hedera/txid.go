package hedera

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	xerrors "hedera-agent-go/internal/errors"
)

// TransactionID is the unique identifier a payer assigns to a transaction:
// the payer account plus the valid-start instant.
type TransactionID struct {
	AccountID  AccountID
	ValidStart time.Time
}

// NewTransactionID generates a fresh transaction id for the given payer.
// The valid start is backdated slightly so the id is already valid when the
// transaction reaches consensus nodes.
func NewTransactionID(payer AccountID) TransactionID {
	return TransactionID{
		AccountID:  payer,
		ValidStart: time.Now().Add(-10 * time.Second),
	}
}

// String renders the mirror-node canonical dash form,
// shard.realm.num-seconds-nanos, with the nanos left-padded to nine digits.
func (t TransactionID) String() string {
	return fmt.Sprintf("%s-%d-%09d", t.AccountID, t.ValidStart.Unix(), t.ValidStart.Nanosecond())
}

var (
	dashTxID = regexp.MustCompile(`^(\d+\.\d+\.\d+)-(\d+)-(\d+)$`)
	atTxID   = regexp.MustCompile(`^(\d+\.\d+\.\d+)@(\d+)\.(\d+)$`)
)

// NormalizeTransactionID accepts either the mirror-node dash form
// (shard.realm.num-seconds-nanos) or the SDK "@" form
// (shard.realm.num@seconds.nanos) and returns the dash form, preserving the
// nanosecond component left-padded to nine digits.
func NormalizeTransactionID(raw string) (string, error) {
	if dashTxID.MatchString(raw) {
		return raw, nil
	}
	if m := atTxID.FindStringSubmatch(raw); m != nil {
		nanos := m[3]
		for len(nanos) < 9 {
			nanos = "0" + nanos
		}
		return fmt.Sprintf("%s-%s-%s", m[1], m[2], nanos), nil
	}
	return "", xerrors.Newf(xerrors.CodeInvalidTransactionID, "Invalid transactionId format: %s", raw)
}

// ParseTransactionID parses either accepted textual form into its parts.
func ParseTransactionID(raw string) (TransactionID, error) {
	normalized, err := NormalizeTransactionID(raw)
	if err != nil {
		return TransactionID{}, err
	}
	m := dashTxID.FindStringSubmatch(normalized)
	account, err := ParseAccountID(m[1])
	if err != nil {
		return TransactionID{}, err
	}
	seconds, _ := strconv.ParseInt(m[2], 10, 64)
	nanos, _ := strconv.ParseInt(m[3], 10, 64)
	return TransactionID{
		AccountID:  account,
		ValidStart: time.Unix(seconds, nanos),
	}, nil
}
