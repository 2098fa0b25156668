// Package drift decodes the subset of Drift v2 accounts read by quartzgo:
// the vault's Drift user and the spot markets it holds positions in.
package drift

import (
	"math/big"

	"quartzgo/errs"
	"quartzgo/utils"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	UserDiscriminator       = [8]byte{159, 117, 95, 227, 239, 151, 58, 236}
	SpotMarketDiscriminator = [8]byte{100, 177, 8, 107, 168, 65, 65, 39}
)

const SpotPositionCount = 8

// Byte offsets into the zero-copy account layouts.
const (
	userAuthorityOffset     = 8
	userDelegateOffset      = 40
	userNameOffset          = 72
	userSpotPositionsOffset = 104
	spotPositionSize        = 40
	userSubAccountIdOffset  = 4346
	UserSize                = 4376

	spotMarketPubkeyOffset                     = 8
	spotMarketOracleOffset                     = 40
	spotMarketMintOffset                       = 72
	spotMarketVaultOffset                      = 104
	spotMarketNameOffset                       = 136
	spotMarketIfTotalFactorOffset              = 408
	spotMarketIfUserFactorOffset               = 412
	spotMarketDepositBalanceOffset             = 432
	spotMarketBorrowBalanceOffset              = 448
	spotMarketCumulativeDepositInterestOffset  = 464
	spotMarketCumulativeBorrowInterestOffset   = 480
	spotMarketInitialAssetWeightOffset         = 640
	spotMarketMaintenanceAssetWeightOffset     = 644
	spotMarketInitialLiabilityWeightOffset     = 648
	spotMarketMaintenanceLiabilityWeightOffset = 652
	spotMarketImfFactorOffset                  = 656
	spotMarketOptimalUtilizationOffset         = 668
	spotMarketOptimalBorrowRateOffset          = 672
	spotMarketMaxBorrowRateOffset              = 676
	spotMarketDecimalsOffset                   = 680
	spotMarketMarketIndexOffset                = 684
	SpotMarketSize                             = 776
)

type SpotBalanceType uint8

const (
	SpotBalanceTypeDeposit SpotBalanceType = iota
	SpotBalanceTypeBorrow
)

func (t SpotBalanceType) String() string {
	if t == SpotBalanceTypeBorrow {
		return "borrow"
	}
	return "deposit"
}

type SpotPosition struct {
	ScaledBalance      uint64
	OpenBids           int64
	OpenAsks           int64
	CumulativeDeposits int64
	MarketIndex        uint16
	BalanceType        SpotBalanceType
	OpenOrders         uint8
}

func (p *SpotPosition) IsAvailable() bool {
	return p.ScaledBalance == 0 && p.OpenOrders == 0
}

type User struct {
	Authority     solana.PublicKey
	Delegate      solana.PublicKey
	Name          [32]byte
	SpotPositions [SpotPositionCount]SpotPosition
	SubAccountId  uint16
}

// GetSpotPosition returns the user's position in marketIndex, or nil.
func (u *User) GetSpotPosition(marketIndex uint16) *SpotPosition {
	for i := range u.SpotPositions {
		position := &u.SpotPositions[i]
		if position.MarketIndex == marketIndex && !position.IsAvailable() {
			return position
		}
	}
	return nil
}

// ActiveSpotPositions are the positions carrying a balance or open orders.
func (u *User) ActiveSpotPositions() []SpotPosition {
	var out []SpotPosition
	for _, position := range u.SpotPositions {
		if !position.IsAvailable() {
			out = append(out, position)
		}
	}
	return out
}

type InsuranceFund struct {
	TotalFactor uint32
	UserFactor  uint32
}

type SpotMarket struct {
	Pubkey                     solana.PublicKey
	Oracle                     solana.PublicKey
	Mint                       solana.PublicKey
	Vault                      solana.PublicKey
	Name                       [32]byte
	InsuranceFund              InsuranceFund
	DepositBalance             *big.Int
	BorrowBalance              *big.Int
	CumulativeDepositInterest  *big.Int
	CumulativeBorrowInterest   *big.Int
	InitialAssetWeight         uint32
	MaintenanceAssetWeight     uint32
	InitialLiabilityWeight     uint32
	MaintenanceLiabilityWeight uint32
	ImfFactor                  uint32
	OptimalUtilization         uint32
	OptimalBorrowRate          uint32
	MaxBorrowRate              uint32
	Decimals                   uint32
	MarketIndex                uint16
}

func checkAccount(op string, data []byte, discriminator [8]byte, minSize int) error {
	if len(data) < minSize {
		return errs.ProtocolMismatch(op, "account data too short: %d < %d", len(data), minSize)
	}
	if !bin.TypeIDFromBytes(data[:8]).Equal(discriminator[:]) {
		return errs.ProtocolMismatch(op, "wrong discriminator %v", data[:8])
	}
	return nil
}

func DecodeUser(data []byte) (*User, error) {
	if err := checkAccount("drift.DecodeUser", data, UserDiscriminator, userSpotPositionsOffset+SpotPositionCount*spotPositionSize); err != nil {
		return nil, err
	}
	user := &User{
		Authority: solana.PublicKeyFromBytes(data[userAuthorityOffset : userAuthorityOffset+32]),
		Delegate:  solana.PublicKeyFromBytes(data[userDelegateOffset : userDelegateOffset+32]),
	}
	copy(user.Name[:], data[userNameOffset:userNameOffset+32])
	for i := 0; i < SpotPositionCount; i++ {
		raw := data[userSpotPositionsOffset+i*spotPositionSize:]
		user.SpotPositions[i] = SpotPosition{
			ScaledBalance:      bin.LE.Uint64(raw[0:]),
			OpenBids:           int64(bin.LE.Uint64(raw[8:])),
			OpenAsks:           int64(bin.LE.Uint64(raw[16:])),
			CumulativeDeposits: int64(bin.LE.Uint64(raw[24:])),
			MarketIndex:        bin.LE.Uint16(raw[32:]),
			BalanceType:        SpotBalanceType(raw[34]),
			OpenOrders:         raw[35],
		}
	}
	if len(data) >= userSubAccountIdOffset+2 {
		user.SubAccountId = bin.LE.Uint16(data[userSubAccountIdOffset:])
	}
	return user, nil
}

// Encode writes the fields DecodeUser reads into a full-size account buffer.
func (u *User) Encode() []byte {
	data := make([]byte, UserSize)
	copy(data, UserDiscriminator[:])
	copy(data[userAuthorityOffset:], u.Authority[:])
	copy(data[userDelegateOffset:], u.Delegate[:])
	copy(data[userNameOffset:], u.Name[:])
	for i, position := range u.SpotPositions {
		raw := data[userSpotPositionsOffset+i*spotPositionSize:]
		bin.LE.PutUint64(raw[0:], position.ScaledBalance)
		bin.LE.PutUint64(raw[8:], uint64(position.OpenBids))
		bin.LE.PutUint64(raw[16:], uint64(position.OpenAsks))
		bin.LE.PutUint64(raw[24:], uint64(position.CumulativeDeposits))
		bin.LE.PutUint16(raw[32:], position.MarketIndex)
		raw[34] = byte(position.BalanceType)
		raw[35] = position.OpenOrders
	}
	bin.LE.PutUint16(data[userSubAccountIdOffset:], u.SubAccountId)
	return data
}

func DecodeSpotMarket(data []byte) (*SpotMarket, error) {
	if err := checkAccount("drift.DecodeSpotMarket", data, SpotMarketDiscriminator, spotMarketMarketIndexOffset+2); err != nil {
		return nil, err
	}
	u32 := func(offset int) uint32 { return bin.LE.Uint32(data[offset:]) }
	key := func(offset int) solana.PublicKey { return solana.PublicKeyFromBytes(data[offset : offset+32]) }
	market := &SpotMarket{
		Pubkey: key(spotMarketPubkeyOffset),
		Oracle: key(spotMarketOracleOffset),
		Mint:   key(spotMarketMintOffset),
		Vault:  key(spotMarketVaultOffset),
		InsuranceFund: InsuranceFund{
			TotalFactor: u32(spotMarketIfTotalFactorOffset),
			UserFactor:  u32(spotMarketIfUserFactorOffset),
		},
		DepositBalance:             utils.Uint128FromLE(data[spotMarketDepositBalanceOffset : spotMarketDepositBalanceOffset+16]),
		BorrowBalance:              utils.Uint128FromLE(data[spotMarketBorrowBalanceOffset : spotMarketBorrowBalanceOffset+16]),
		CumulativeDepositInterest:  utils.Uint128FromLE(data[spotMarketCumulativeDepositInterestOffset : spotMarketCumulativeDepositInterestOffset+16]),
		CumulativeBorrowInterest:   utils.Uint128FromLE(data[spotMarketCumulativeBorrowInterestOffset : spotMarketCumulativeBorrowInterestOffset+16]),
		InitialAssetWeight:         u32(spotMarketInitialAssetWeightOffset),
		MaintenanceAssetWeight:     u32(spotMarketMaintenanceAssetWeightOffset),
		InitialLiabilityWeight:     u32(spotMarketInitialLiabilityWeightOffset),
		MaintenanceLiabilityWeight: u32(spotMarketMaintenanceLiabilityWeightOffset),
		ImfFactor:                  u32(spotMarketImfFactorOffset),
		OptimalUtilization:         u32(spotMarketOptimalUtilizationOffset),
		OptimalBorrowRate:          u32(spotMarketOptimalBorrowRateOffset),
		MaxBorrowRate:              u32(spotMarketMaxBorrowRateOffset),
		Decimals:                   u32(spotMarketDecimalsOffset),
		MarketIndex:                bin.LE.Uint16(data[spotMarketMarketIndexOffset:]),
	}
	copy(market.Name[:], data[spotMarketNameOffset:spotMarketNameOffset+32])
	return market, nil
}

// Encode writes the fields DecodeSpotMarket reads into a full-size account buffer.
func (m *SpotMarket) Encode() []byte {
	data := make([]byte, SpotMarketSize)
	copy(data, SpotMarketDiscriminator[:])
	copy(data[spotMarketPubkeyOffset:], m.Pubkey[:])
	copy(data[spotMarketOracleOffset:], m.Oracle[:])
	copy(data[spotMarketMintOffset:], m.Mint[:])
	copy(data[spotMarketVaultOffset:], m.Vault[:])
	copy(data[spotMarketNameOffset:], m.Name[:])
	bin.LE.PutUint32(data[spotMarketIfTotalFactorOffset:], m.InsuranceFund.TotalFactor)
	bin.LE.PutUint32(data[spotMarketIfUserFactorOffset:], m.InsuranceFund.UserFactor)
	putUint128(data[spotMarketDepositBalanceOffset:], m.DepositBalance)
	putUint128(data[spotMarketBorrowBalanceOffset:], m.BorrowBalance)
	putUint128(data[spotMarketCumulativeDepositInterestOffset:], m.CumulativeDepositInterest)
	putUint128(data[spotMarketCumulativeBorrowInterestOffset:], m.CumulativeBorrowInterest)
	bin.LE.PutUint32(data[spotMarketInitialAssetWeightOffset:], m.InitialAssetWeight)
	bin.LE.PutUint32(data[spotMarketMaintenanceAssetWeightOffset:], m.MaintenanceAssetWeight)
	bin.LE.PutUint32(data[spotMarketInitialLiabilityWeightOffset:], m.InitialLiabilityWeight)
	bin.LE.PutUint32(data[spotMarketMaintenanceLiabilityWeightOffset:], m.MaintenanceLiabilityWeight)
	bin.LE.PutUint32(data[spotMarketImfFactorOffset:], m.ImfFactor)
	bin.LE.PutUint32(data[spotMarketOptimalUtilizationOffset:], m.OptimalUtilization)
	bin.LE.PutUint32(data[spotMarketOptimalBorrowRateOffset:], m.OptimalBorrowRate)
	bin.LE.PutUint32(data[spotMarketMaxBorrowRateOffset:], m.MaxBorrowRate)
	bin.LE.PutUint32(data[spotMarketDecimalsOffset:], m.Decimals)
	bin.LE.PutUint16(data[spotMarketMarketIndexOffset:], m.MarketIndex)
	return data
}

// putUint128 writes v (nil as zero) little endian into the first 16 bytes of dst.
func putUint128(dst []byte, v *big.Int) {
	if v == nil {
		return
	}
	be := v.FillBytes(make([]byte, 16))
	for i := 0; i < 16; i++ {
		dst[i] = be[15-i]
	}
}
