package util

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseIntPrefix 宽松整数解析：跳过前导空白，可带正负号，取随后连续的数字。
// 0x/0X 开头按十六进制读取。
// "30" -> 30, " 42min" -> 42, "3.9" -> 3, "0x10" -> 16, "abc" -> (0, false)
func ParseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(sign+s[:end], base, strconv.IntSize)
	if err != nil {
		// 只可能是溢出
		if sign == "-" {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return int(n), true
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ParseDuration 非数字输入返回 nil（即 NaN 哨兵值），不会报错
func ParseDuration(s string) *int {
	n, ok := ParseIntPrefix(s)
	if !ok {
		return nil
	}
	return &n
}

// LimitEnd 计算 log[:end] 的 end，limit 为空返回 (0, false) 表示不截断。
// 非数字保留 0 条；负数从末尾去掉 |n| 条，最少为 0。
func LimitEnd(limit string, length int) (int, bool) {
	if limit == "" {
		return 0, false
	}
	n, ok := ParseIntPrefix(limit)
	if !ok {
		return 0, true
	}
	if n < 0 {
		n += length
		if n < 0 {
			n = 0
		}
	}
	if n > length {
		n = length
	}
	return n, true
}
