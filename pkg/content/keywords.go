package content

// DefaultVocabulary is the fixed keyword set a handle's posts are matched
// against. Matching is unanchored substring, so short entries like "eth"
// intentionally catch $ETH tickers, ethmumbai, ethereum and the like.
var DefaultVocabulary = []string{
	"ethereum", "eth", "bitcoin", "btc", "blockchain", "crypto", "web3",
	"defi", "nft", "dao", "smart contract", "solidity", "dapp", "layer2",
	"l2", "rollup", "zk", "proof", "mainnet", "testnet", "sepolia", "goerli",
	"metamask", "wallet", "gas", "gwei", "wei", "token", "erc20", "erc721",
	"mint", "airdrop", "stake", "yield", "liquidity", "swap", "uniswap",
	"ens", "vitalik", "polygon", "arbitrum", "optimism", "base", "solana",
	"cosmos", "avalanche", "gmgn", "wagmi", "ngmi", "hodl", "ape", "fren",
	"ethmumbai", "hackathon", "buidl", "gm", "ser", "anon", "devcon",
}
