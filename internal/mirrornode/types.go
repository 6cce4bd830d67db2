package mirrornode

// Key is a key as rendered by the mirror-node REST API.
type Key struct {
	Type string `json:"_type"`
	Key  string `json:"key"`
}

// TokenInfo is the subset of /api/v1/tokens/{id} the kit reads.
type TokenInfo struct {
	TokenID        string `json:"token_id"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Decimals       string `json:"decimals"`
	TotalSupply    string `json:"total_supply"`
	Type           string `json:"type"`
	Memo           string `json:"memo"`
	TreasuryID     string `json:"treasury_account_id"`
	AdminKey       *Key   `json:"admin_key"`
	KYCKey         *Key   `json:"kyc_key"`
	FreezeKey      *Key   `json:"freeze_key"`
	WipeKey        *Key   `json:"wipe_key"`
	SupplyKey      *Key   `json:"supply_key"`
	FeeScheduleKey *Key   `json:"fee_schedule_key"`
	PauseKey       *Key   `json:"pause_key"`
	MetadataKey    *Key   `json:"metadata_key"`
}

// KeyNamed returns the named key slot, using the snake_case slot names the
// REST API uses ("admin_key", "supply_key", ...). Nil when the token was
// created without that key.
func (t *TokenInfo) KeyNamed(slot string) *Key {
	switch slot {
	case "admin_key":
		return t.AdminKey
	case "kyc_key":
		return t.KYCKey
	case "freeze_key":
		return t.FreezeKey
	case "wipe_key":
		return t.WipeKey
	case "supply_key":
		return t.SupplyKey
	case "fee_schedule_key":
		return t.FeeScheduleKey
	case "pause_key":
		return t.PauseKey
	case "metadata_key":
		return t.MetadataKey
	default:
		return nil
	}
}

// TokenBalance is one entry of an account's token holdings.
type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

// Balance is an account's hbar balance plus token holdings.
type Balance struct {
	Balance int64          `json:"balance"`
	Tokens  []TokenBalance `json:"tokens"`
}

// AccountInfo is the subset of /api/v1/accounts/{id} the kit reads.
type AccountInfo struct {
	AccountID  string  `json:"account"`
	Balance    Balance `json:"balance"`
	Key        *Key    `json:"key"`
	EvmAddress string  `json:"evm_address"`
	Memo       string  `json:"memo"`
	Deleted    bool    `json:"deleted"`
}

// ContractInfo is the subset of /api/v1/contracts/{id} the kit reads.
type ContractInfo struct {
	ContractID string `json:"contract_id"`
	EvmAddress string `json:"evm_address"`
	AdminKey   *Key   `json:"admin_key"`
	Memo       string `json:"memo"`
	Deleted    bool   `json:"deleted"`
}

// TopicInfo is the subset of /api/v1/topics/{id} the kit reads.
type TopicInfo struct {
	TopicID   string `json:"topic_id"`
	Memo      string `json:"memo"`
	AdminKey  *Key   `json:"admin_key"`
	SubmitKey *Key   `json:"submit_key"`
	Deleted   bool   `json:"deleted"`
}

// TopicMessage is one consensus message; Message is base64 on the wire.
type TopicMessage struct {
	ConsensusTimestamp string `json:"consensus_timestamp"`
	Message            string `json:"message"`
	SequenceNumber     int64  `json:"sequence_number"`
	TopicID            string `json:"topic_id"`
}

// TopicMessagesQuery carries the optional filters of a message listing.
type TopicMessagesQuery struct {
	TopicID   string
	StartTime string
	EndTime   string
	Limit     int
}

// TopicMessagesPage is a page of topic messages.
type TopicMessagesPage struct {
	Messages []TopicMessage `json:"messages"`
}

// Transfer is one transfer line of a mirrored transaction record.
type Transfer struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

// TransactionDetail is one mirrored transaction record.
type TransactionDetail struct {
	TransactionID      string     `json:"transaction_id"`
	Name               string     `json:"name"`
	Result             string     `json:"result"`
	ConsensusTimestamp string     `json:"consensus_timestamp"`
	Memo               string     `json:"memo_base64"`
	Transfers          []Transfer `json:"transfers"`
	Nonce              int        `json:"nonce"`
}

// TransactionsPage is the envelope of /api/v1/transactions/{id}.
type TransactionsPage struct {
	Transactions []TransactionDetail `json:"transactions"`
}

// TimestampRange is a consensus timestamp interval; To is empty while the
// range is open.
type TimestampRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TokenAirdrop is one pending or outstanding airdrop entry. SerialNumber is
// zero for fungible airdrops.
type TokenAirdrop struct {
	TokenID      string         `json:"token_id"`
	Amount       int64          `json:"amount"`
	SerialNumber int64          `json:"serial_number"`
	SenderID     string         `json:"sender_id"`
	ReceiverID   string         `json:"receiver_id"`
	Timestamp    TimestampRange `json:"timestamp"`
}

// TokenAirdropsPage is the envelope of /api/v1/accounts/{id}/airdrops/*.
type TokenAirdropsPage struct {
	Airdrops []TokenAirdrop `json:"airdrops"`
}

// Rate is one half of the network exchange rate pair.
type Rate struct {
	CentEquivalent int64 `json:"cent_equivalent"`
	HbarEquivalent int64 `json:"hbar_equivalent"`
	ExpirationTime int64 `json:"expiration_time"`
}

// ExchangeRate is the network HBAR/USD exchange rate envelope.
type ExchangeRate struct {
	CurrentRate Rate   `json:"current_rate"`
	NextRate    Rate   `json:"next_rate"`
	Timestamp   string `json:"timestamp"`
}

// HbarPriceInCents returns the current rate expressed as US cents per hbar.
func (e *ExchangeRate) HbarPriceInCents() float64 {
	if e.CurrentRate.HbarEquivalent == 0 {
		return 0
	}
	return float64(e.CurrentRate.CentEquivalent) / float64(e.CurrentRate.HbarEquivalent)
}
