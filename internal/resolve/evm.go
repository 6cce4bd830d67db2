package resolve

import (
	"context"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"

	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
)

// EVMAddress resolves a raw address into an EVM address. A 0x-prefixed hex
// string passes through; a shard.realm.num address is looked up on the
// mirror node.
func EVMAddress(ctx context.Context, raw string, mirror mirrornode.Service) (ethcommon.Address, error) {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		if !ethcommon.IsHexAddress(raw) {
			return ethcommon.Address{}, xerrors.Newf(xerrors.CodeInvalidAddress,
				"invalid EVM address: %s", raw)
		}
		return ethcommon.HexToAddress(raw), nil
	}
	account, err := mirror.Account(ctx, raw)
	if err != nil {
		return ethcommon.Address{}, err
	}
	if account.EvmAddress == "" || !ethcommon.IsHexAddress(account.EvmAddress) {
		return ethcommon.Address{}, xerrors.Newf(xerrors.CodeInvalidAddress,
			"account %s has no EVM address", raw)
	}
	return ethcommon.HexToAddress(account.EvmAddress), nil
}

// Contract resolves a raw contract identifier, accepting either a canonical
// shard.realm.num address or an EVM address resolved via the mirror node.
func Contract(ctx context.Context, raw string, mirror mirrornode.Service) (hedera.ContractID, error) {
	if hedera.IsValidAddress(raw) {
		return hedera.ParseContractID(raw)
	}
	info, err := mirror.ContractInfo(ctx, raw)
	if err != nil {
		return hedera.ContractID{}, err
	}
	return hedera.ParseContractID(info.ContractID)
}
