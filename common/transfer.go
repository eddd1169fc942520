package common

var (
	mintPrefix     = []byte{0x01}
	burnPrefix     = []byte{0x02}
	lockPrefix     = []byte{0x03}
	unlockPrefix   = []byte{0x04}
	paymentPrefix  = []byte{0x10}
	withdrawPrefix = []byte{0x11}
)

func MintTransferDetails(txDetails []byte) []byte {
	return append(mintPrefix, txDetails...)
}

func BurnTransferDetails(txDetails []byte) []byte {
	return append(burnPrefix, txDetails...)
}

func LockTransferDetails(txDetails []byte) []byte {
	return append(lockPrefix, txDetails...)
}

func UnlockTransferDetails(epoch int) []byte {
	var buf interface{} = epoch
	return append(unlockPrefix, buf.([]byte)...)
}

// PaymentTransferDetails marks a transfer that escrows one subscription
// period payment for the given subscription record.
func PaymentTransferDetails(id []byte) []byte {
	return append(paymentPrefix, id...)
}

// WithdrawalTransferDetails marks a transfer that releases escrowed funds
// to a co-owner of the given subscription record.
func WithdrawalTransferDetails(id []byte) []byte {
	return append(withdrawPrefix, id...)
}
