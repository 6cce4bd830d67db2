package normalize

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"hedera-agent-go/internal/config"
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
	"hedera-agent-go/internal/params"
	"hedera-agent-go/internal/resolve"
)

// Factory contracts deployed per network; only testnet carries them today.
const (
	testnetERC20Factory  = "0.0.6471814"
	testnetERC721Factory = "0.0.6510666"
)

// Gas ceilings: deployments and mints run constructors, plain calls do not.
const (
	deployGas = 3_000_000
	callGas   = 100_000
)

const (
	deployERC20ABI = `[{"type":"function","name":"deployToken","stateMutability":"nonpayable","inputs":[{"name":"name_","type":"string"},{"name":"symbol_","type":"string"},{"name":"decimals_","type":"uint8"},{"name":"initialSupply_","type":"uint256"}],"outputs":[{"type":"address"}]}]`

	deployERC721ABI = `[{"type":"function","name":"deployToken","stateMutability":"nonpayable","inputs":[{"name":"name_","type":"string"},{"name":"symbol_","type":"string"},{"name":"baseURI_","type":"string"}],"outputs":[{"type":"address"}]}]`

	transferERC20ABI = `[{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"type":"bool"}]}]`

	transferERC721ABI = `[{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[{"type":"bool"}]}]`

	mintERC721ABI = `[{"type":"function","name":"safeMint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"}],"outputs":[{"type":"bool"}]}]`
)

var (
	erc20FactoryABI  = mustABI(deployERC20ABI)
	erc721FactoryABI = mustABI(deployERC721ABI)
	erc20TransferABI = mustABI(transferERC20ABI)
	nftTransferABI   = mustABI(transferERC721ABI)
	nftMintABI       = mustABI(mintERC721ABI)
)

func mustABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

// ERC20FactoryAddress returns the factory contract for the named network.
func ERC20FactoryAddress(network string) (hedera.ContractID, error) {
	if network != "testnet" {
		return hedera.ContractID{}, xerrors.Newf(xerrors.CodeInvalidParameters,
			"Network type %s not supported for ERC20 factory", network)
	}
	return hedera.ParseContractID(testnetERC20Factory)
}

// ERC721FactoryAddress returns the factory contract for the named network.
func ERC721FactoryAddress(network string) (hedera.ContractID, error) {
	if network != "testnet" {
		return hedera.ContractID{}, xerrors.Newf(xerrors.CodeInvalidParameters,
			"Network type %s not supported for ERC721 factory", network)
	}
	return hedera.ParseContractID(testnetERC721Factory)
}

// CreateERC20 encodes a deployToken call against the network's ERC-20
// factory. Decimals default to 18 and the initial supply to 0.
func CreateERC20(raw params.CreateERC20, network string) (*params.ContractExecuteNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	factory, err := ERC20FactoryAddress(network)
	if err != nil {
		return nil, err
	}
	decimals := int64(18)
	if raw.Decimals != nil {
		decimals = *raw.Decimals
	}
	if decimals < 0 || decimals > 255 {
		return nil, xerrors.Newf(xerrors.CodeInvalidParameters,
			"decimals must be between 0 and 255, got %d", decimals)
	}
	initialSupply := int64(0)
	if raw.InitialSupply != nil {
		initialSupply = *raw.InitialSupply
	}
	callData, err := erc20FactoryABI.Pack("deployToken",
		raw.TokenName, raw.TokenSymbol, uint8(decimals), big.NewInt(initialSupply))
	if err != nil {
		return nil, xerrors.Wrap(xerrors.CodeInvalidParameters, err, "could not encode deployToken call")
	}
	return &params.ContractExecuteNormalised{
		ContractID:         factory,
		Gas:                deployGas,
		FunctionParameters: callData,
	}, nil
}

// CreateERC721 encodes a deployToken call against the network's ERC-721
// factory.
func CreateERC721(raw params.CreateERC721, network string) (*params.ContractExecuteNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	factory, err := ERC721FactoryAddress(network)
	if err != nil {
		return nil, err
	}
	callData, err := erc721FactoryABI.Pack("deployToken",
		raw.TokenName, raw.TokenSymbol, raw.BaseURI)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.CodeInvalidParameters, err, "could not encode deployToken call")
	}
	return &params.ContractExecuteNormalised{
		ContractID:         factory,
		Gas:                deployGas,
		FunctionParameters: callData,
	}, nil
}

// TransferERC20 encodes a transfer(address,uint256) call. The recipient may
// be an EVM address or a ledger account resolved via the mirror node.
func TransferERC20(ctx context.Context, raw params.TransferERC20, mirror mirrornode.Service) (*params.ContractExecuteNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	contractID, err := resolve.Contract(ctx, raw.ContractID, mirror)
	if err != nil {
		return nil, err
	}
	recipient, err := resolve.EVMAddress(ctx, raw.RecipientAddress, mirror)
	if err != nil {
		return nil, err
	}
	amount := raw.Amount.BigInt()
	if amount.Sign() <= 0 {
		return nil, xerrors.Newf(xerrors.CodeInvalidParameters,
			"Invalid transfer amount: %s", raw.Amount)
	}
	callData, err := erc20TransferABI.Pack("transfer", recipient, amount)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.CodeInvalidParameters, err, "could not encode transfer call")
	}
	return &params.ContractExecuteNormalised{
		ContractID:         contractID,
		Gas:                callGas,
		FunctionParameters: callData,
	}, nil
}

// TransferERC721 encodes a transferFrom(address,address,uint256) call. The
// sender defaults to the operator account.
func TransferERC721(ctx context.Context, raw params.TransferERC721, agent *config.Context, client hedera.Client, mirror mirrornode.Service) (*params.ContractExecuteNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	contractID, err := resolve.Contract(ctx, raw.ContractID, mirror)
	if err != nil {
		return nil, err
	}
	fromRaw := raw.FromAddress
	if fromRaw == "" {
		source, err := resolve.DefaultAccount(agent, client)
		if err != nil {
			return nil, err
		}
		fromRaw = source.String()
	}
	from, err := resolve.EVMAddress(ctx, fromRaw, mirror)
	if err != nil {
		return nil, err
	}
	to, err := resolve.EVMAddress(ctx, raw.ToAddress, mirror)
	if err != nil {
		return nil, err
	}
	callData, err := nftTransferABI.Pack("transferFrom", from, to, big.NewInt(raw.TokenID))
	if err != nil {
		return nil, xerrors.Wrap(xerrors.CodeInvalidParameters, err, "could not encode transferFrom call")
	}
	return &params.ContractExecuteNormalised{
		ContractID:         contractID,
		Gas:                callGas,
		FunctionParameters: callData,
	}, nil
}

// MintERC721 encodes a safeMint(address) call. The target defaults to the
// operator account.
func MintERC721(ctx context.Context, raw params.MintERC721, agent *config.Context, client hedera.Client, mirror mirrornode.Service) (*params.ContractExecuteNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	contractID, err := resolve.Contract(ctx, raw.ContractID, mirror)
	if err != nil {
		return nil, err
	}
	toRaw := raw.ToAddress
	if toRaw == "" {
		target, err := resolve.DefaultAccount(agent, client)
		if err != nil {
			return nil, err
		}
		toRaw = target.String()
	}
	to, err := resolve.EVMAddress(ctx, toRaw, mirror)
	if err != nil {
		return nil, err
	}
	callData, err := nftMintABI.Pack("safeMint", to)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.CodeInvalidParameters, err, "could not encode safeMint call")
	}
	return &params.ContractExecuteNormalised{
		ContractID:         contractID,
		Gas:                deployGas,
		FunctionParameters: callData,
	}, nil
}
