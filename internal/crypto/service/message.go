package service

import (
	"encoding/binary"
	"fmt"
	"math"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// scopedMessage builds KeyScope || uint32BE(len(value)) || value, the prefix shared by the
// scrypt salt and the HMAC message. Lengths are byte lengths, not rune counts.
func scopedMessage(value string, extra int) ([]byte, error) {
	if uint64(len(value)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", cryptoDomain.ErrInputTooLong, len(value))
	}

	msg := make([]byte, 0, len(cryptoDomain.KeyScope)+4+len(value)+extra)
	msg = append(msg, cryptoDomain.KeyScope...)
	msg = binary.BigEndian.AppendUint32(msg, uint32(len(value)))
	msg = append(msg, value...)
	return msg, nil
}
