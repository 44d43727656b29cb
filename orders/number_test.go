package orders_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ISSA5922/ambertek-export/orders"
)

func TestOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 30, 0, 0, time.FixedZone("EAT", 3*60*60))
	number := orders.NewOrderNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{4}$`), number)
	// The date component is the UTC date, not the local one.
	assert.True(t, strings.HasPrefix(number, "ORD-20260314-"), number)
}

func TestOrderNumbersUniqueWithRegeneration(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool, 10000)

	for i := 0; i < 10000; i++ {
		number := orders.NewOrderNumber(now)
		for attempt := 0; seen[number]; attempt++ {
			// Mirrors the assembler's bounded regeneration policy.
			require.Less(t, attempt, 3, "exhausted order number retries at order %d", i)
			number = orders.NewOrderNumber(now)
		}
		seen[number] = true
	}
	assert.Len(t, seen, 10000)
}
