package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 100000.0, ParseAmount("100000"))
	assert.Equal(t, 150000.5, ParseAmount("150000.50"))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("null"))
	assert.Equal(t, 0.0, ParseAmount("NULL"))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("-5000"))
	assert.Equal(t, 0.0, ParseAmount("NaN"))
	assert.Equal(t, 0.0, ParseAmount("+Inf"))
	assert.Equal(t, 100000.0, ParseAmount("  100000  "))
}

func TestEarnedPoints(t *testing.T) {
	// 1 điểm / 1000đ, tỉ lệ 5%, làm tròn nửa trên
	assert.Equal(t, 5, EarnedPoints(100000))
	assert.Equal(t, 8, EarnedPoints(150000))
	assert.Equal(t, 0, EarnedPoints(0))
	assert.Equal(t, 0, EarnedPoints(-100000))
	assert.Equal(t, 0, EarnedPoints(5000))
	assert.Equal(t, 1, EarnedPoints(10000))
	assert.Equal(t, 2, EarnedPoints(30000))
}
