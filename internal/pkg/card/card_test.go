package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected bool
	}{
		{"visa測試卡", "4242424242424242", true},
		{"含空白分隔", "4242 4242 4242 4242", true},
		{"含dash分隔", "4242-4242-4242-4242", true},
		{"Luhn檢查碼錯誤", "4242424242424241", false},
		{"太短", "42424242424", false},
		{"太長", "42424242424242424242", false},
		{"含非數字", "4242abcd42424242", false},
		{"空字串", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidNumber(tt.number))
		})
	}
}

func TestValidExpiry(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		expiry   string
		expected bool
	}{
		{"未來年份MM/YY", "11/30", true},
		{"未來年份MM/YYYY", "11/2030", true},
		{"已過期", "01/20", false},
		{"當月有效到月底", "06/26", true},
		{"上個月已失效", "05/26", false},
		{"月份超界", "13/30", false},
		{"月份為0", "00/30", false},
		{"格式錯誤", "1130", false},
		{"空字串", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidExpiry(tt.expiry, now))
		})
	}
}

func TestValidCVV(t *testing.T) {
	assert.True(t, ValidCVV("123"))
	assert.True(t, ValidCVV("1234"))
	assert.False(t, ValidCVV("12"))
	assert.False(t, ValidCVV("12345"))
	assert.False(t, ValidCVV("abc"))
	assert.False(t, ValidCVV(""))
}
