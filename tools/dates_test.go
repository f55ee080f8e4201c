package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateID(t *testing.T) {
	ts := time.Date(2026, time.October, 15, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "15 Oktober 2026 14.05", FormatDateID(ts))

	ts = time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 Januari 2025 09.00", FormatDateID(ts))
}
