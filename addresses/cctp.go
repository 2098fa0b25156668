package addresses

import (
	"strconv"

	"github.com/gagliardetto/solana-go"
)

func GetSenderAuthorityPublicKey(tokenMessengerMinter solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("sender_authority")}, tokenMessengerMinter)
	return address
}

func GetTokenMessengerPublicKey(tokenMessengerMinter solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("token_messenger")}, tokenMessengerMinter)
	return address
}

func GetTokenMinterPublicKey(tokenMessengerMinter solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("token_minter")}, tokenMessengerMinter)
	return address
}

func GetLocalTokenPublicKey(tokenMessengerMinter solana.PublicKey, mint solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("local_token"), mint.Bytes()}, tokenMessengerMinter)
	return address
}

// GetRemoteTokenMessengerPublicKey is keyed by the decimal ascii of the
// destination domain.
func GetRemoteTokenMessengerPublicKey(tokenMessengerMinter solana.PublicKey, domain uint32) solana.PublicKey {
	address, _ := findProgramAddress(
		[][]byte{[]byte("remote_token_messenger"), []byte(strconv.FormatUint(uint64(domain), 10))},
		tokenMessengerMinter,
	)
	return address
}

func GetMessageTransmitterPublicKey(messageTransmitter solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("message_transmitter")}, messageTransmitter)
	return address
}
