// Package wallet fetches per-request telemetry from an Ethereum JSON-RPC
// endpoint.
package wallet

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/maxi-checker/pkg/apperr"
	"github.com/maxi-checker/pkg/config"
	"github.com/maxi-checker/pkg/persona"
)

type Gateway struct {
	client  *ethclient.Client
	timeout time.Duration
}

func New(cfg *config.Config) (*Gateway, error) {
	client, err := ethclient.Dial(cfg.EthRPCURL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to connect to Ethereum RPC", err)
	}
	return &Gateway{client: client, timeout: cfg.GatewayTimeout}, nil
}

// Fetch returns the wallet's balance (ETH) and transaction count. Balance
// and nonce are queried concurrently against the latest block.
func (g *Gateway) Fetch(ctx context.Context, address string) (persona.Telemetry, error) {
	if !common.IsHexAddress(address) {
		return persona.Telemetry{}, apperr.New(apperr.KindValidation, "Invalid wallet address")
	}
	addr := common.HexToAddress(address)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var (
		balance *big.Int
		nonce   uint64
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		balance, err = g.client.BalanceAt(ctx, addr, nil)
		return err
	})
	eg.Go(func() error {
		var err error
		nonce, err = g.client.NonceAt(ctx, addr, nil)
		return err
	})
	if err := eg.Wait(); err != nil {
		return persona.Telemetry{}, apperr.Wrap(apperr.KindUpstream, "Failed to analyze wallet", err)
	}

	t := persona.Telemetry{Balance: weiToEth(balance), TxCount: nonce}
	log.Debug().Str("addr", abbrev(address)).Float64("eth", t.Balance).Uint64("txs", t.TxCount).Msg("fetched telemetry")
	return t, nil
}

// MintTx is the placeholder persona mint: a zero-value self-transaction the
// client wallet signs and broadcasts. Not a real minting contract call.
type MintTx struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Nonce    string `json:"nonce"`
	Gas      string `json:"gas"`
	GasPrice string `json:"gasPrice"`
	ChainID  string `json:"chainId"`
}

// MintParams assembles the unsigned transaction parameters for the mint
// simulation.
func (g *Gateway) MintParams(ctx context.Context, address string) (*MintTx, error) {
	if !common.IsHexAddress(address) {
		return nil, apperr.New(apperr.KindValidation, "Invalid wallet address")
	}
	addr := common.HexToAddress(address)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	nonce, err := g.client.PendingNonceAt(ctx, addr)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to prepare mint transaction", err)
	}
	gasPrice, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to prepare mint transaction", err)
	}
	chainID, err := g.client.ChainID(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to prepare mint transaction", err)
	}

	return &MintTx{
		From:     addr.Hex(),
		To:       addr.Hex(),
		Value:    "0x0",
		Nonce:    hexutil.EncodeUint64(nonce),
		Gas:      hexutil.EncodeUint64(params.TxGas),
		GasPrice: hexutil.EncodeBig(gasPrice),
		ChainID:  hexutil.EncodeBig(chainID),
	}, nil
}

func (g *Gateway) Close() {
	g.client.Close()
}

// weiToEth converts the smallest on-chain unit to the display unit.
func weiToEth(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	f := new(big.Float).SetInt(wei)
	f.Quo(f, big.NewFloat(params.Ether))
	v, _ := f.Float64()
	return v
}

func abbrev(a string) string {
	if len(a) > 12 {
		return a[:6] + "..." + a[len(a)-4:]
	}
	return a
}
