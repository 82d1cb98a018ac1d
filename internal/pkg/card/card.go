// Package card 提供信用卡格式檢查
// 只做格式與過期檢查，不做任何金流驗證
package card

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cvvPattern    = regexp.MustCompile(`^[0-9]{3,4}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2}|[0-9]{4})$`)
)

// ValidNumber 檢查卡號格式
// 允許空白與'-'分隔，長度12~19，Luhn檢查碼必須正確
func ValidNumber(number string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(number))
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return false
		}
		d := int(ch - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidExpiry 檢查到期日
// 格式 MM/YY 或 MM/YYYY，到期月份的最後一刻之前有效
func ValidExpiry(expiry string, now time.Time) bool {
	matches := expiryPattern.FindStringSubmatch(strings.TrimSpace(expiry))
	if matches == nil {
		return false
	}

	month, _ := strconv.Atoi(matches[1])
	year, _ := strconv.Atoi(matches[2])
	if year < 100 {
		year += (now.Year() / 100) * 100
	}

	// 到期月份的下個月一號即失效
	expiresAt := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return now.Before(expiresAt)
}

// ValidCVV 3~4位數字
func ValidCVV(cvv string) bool {
	return cvvPattern.MatchString(strings.TrimSpace(cvv))
}
