package orders

import (
	"time"

	"github.com/google/uuid"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderNumber generates an order number of the form ORD-YYYYMMDD-XXXX:
// the current UTC date plus four random uppercase alphanumeric characters.
// Collisions are not checked here; the storage layer's unique index catches
// them and the assembler retries with a fresh suffix.
func NewOrderNumber(now time.Time) string {
	id := uuid.New()
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[int(id[i])%len(orderNumberAlphabet)]
	}
	return "ORD-" + now.UTC().Format("20060102") + "-" + string(suffix)
}
