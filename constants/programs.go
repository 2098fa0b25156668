package constants

import (
	"github.com/gagliardetto/solana-go"
)

// IDL_VERSION is the Quartz program interface these bindings target.
const IDL_VERSION = "0.10.0"

var QUARTZ_PROGRAM_ID = solana.MustPublicKeyFromBase58("6JjHXLheGSNvvexgzMthEcgjkcirDrGduc3HAKB2P1v2")
var DRIFT_PROGRAM_ID = solana.MustPublicKeyFromBase58("dRiftyHA39MWEi3m9aunc5MzRF1JYuBsbn6VPcn33UH")

var PYTH_PUSH_ORACLE_PROGRAM_ID = solana.MustPublicKeyFromBase58("pythWSnswVUd12oZpeFP8e9CVaEqJg25g1Vtc2biRsT")
var PYTH_RECEIVER_PROGRAM_ID = solana.MustPublicKeyFromBase58("rec5EKMGg6MxZYaMdyBfgwp4d5rB9T1VQH5pJv5LtFJ")

var MESSAGE_TRANSMITTER_PROGRAM_ID = solana.MustPublicKeyFromBase58("CCTPmbSD7gX1bxKPAmg77w8oFzNFpaQiQUWD43TKaecd")
var TOKEN_MESSENGER_MINTER_PROGRAM_ID = solana.MustPublicKeyFromBase58("CCTPiPYPc6AsJuwueEnWgSgucamXDZwBd53dQ11YiKX3")

var QUARTZ_ADDRESS_TABLE = solana.MustPublicKeyFromBase58("96BmeKKVGX3LKYSKo3FCEom1YpNY11kCnGscKq6ouxLx")

var USDC_MINT_MAINNET = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
var USDC_MINT_DEVNET = solana.MustPublicKeyFromBase58("8zGuJQqwhZafTah7Uc7Z4tXRnguqkn5KLFAP8oV6PHe2")
