// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

// Mask 토큰, 키 등의 민감 정보를 로그에 남길 수 있도록 마스킹합니다.
//
//	""                 -> ""
//	"abc"              -> "***"
//	"secret123"        -> "secr***"
//	"0123456789abcdef" -> "0123***cdef"
func Mask(s string) string {
	switch n := len(s); {
	case n == 0:
		return ""
	case n <= 3:
		return "***"
	case n <= 12:
		return s[:4] + "***"
	default:
		return s[:4] + "***" + s[n-4:]
	}
}
