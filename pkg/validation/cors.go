package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const (
	maxHostnameLength = 253
	maxLabelLength    = 63
)

// ValidateCORSOrigin 문자열이 'Scheme://Host[:Port]' 형식의 CORS Origin인지 검증합니다.
//
// '*'는 모든 출처 허용으로 유효하며, 스키마는 http/https만 허용합니다.
// 경로, 후행 슬래시, 쿼리, 프래그먼트, 사용자 정보가 포함되면 유효하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	trimmed := strings.TrimSpace(origin)
	if trimmed == "*" {
		return nil
	}
	if trimmed == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(trimmed, "/") {
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (input=%q)", trimmed)
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("CORS Origin이 유효한 URL 형식이 아닙니다 (input=%q): %w", trimmed, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마는 'http' 또는 'https'만 허용됩니다 (input=%q)", trimmed)
	}

	switch {
	case u.Path != "":
		return fmt.Errorf("CORS Origin은 경로(Path)를 포함할 수 없습니다 (input=%q)", trimmed)
	case u.RawQuery != "":
		return fmt.Errorf("CORS Origin은 쿼리 파라미터를 포함할 수 없습니다 (input=%q)", trimmed)
	case u.Fragment != "":
		return fmt.Errorf("CORS Origin은 URL Fragment(#)를 포함할 수 없습니다 (input=%q)", trimmed)
	case u.User != nil:
		return fmt.Errorf("CORS Origin은 사용자 자격 증명(UserInfo)을 포함할 수 없습니다 (input=%q)", trimmed)
	}

	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트 번호가 유효하지 않습니다 (input=%q, port=%s)", trimmed, portStr)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: %w (input=%q)", err, trimmed)
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("CORS Origin에 호스트(Host) 정보가 없습니다 (input=%q)", trimmed)
	}
	if err := ValidateHostname(host); err != nil {
		return fmt.Errorf("CORS Origin 호스트 검증 실패: %w", err)
	}

	return nil
}

// ValidatePort 포트 번호가 1-65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소 또는 RFC 1123 호스트명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if len(host) > maxHostnameLength {
		return fmt.Errorf("호스트명은 %d자를 초과할 수 없습니다 (len=%d)", maxHostnameLength, len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 {
			return fmt.Errorf("호스트명에 빈 레이블이 포함되어 있습니다 (host=%q)", host)
		}
		if len(label) > maxLabelLength {
			return fmt.Errorf("레이블은 %d자를 초과할 수 없습니다 (label=%q)", maxLabelLength, label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}
		for _, r := range label {
			if !isHostnameRune(r) {
				return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (invalid_char=%q, host=%q)", r, host)
			}
		}
	}

	// TLD는 숫자로만 구성될 수 없다 (RFC 1123)
	if tld := labels[len(labels)-1]; isNumeric(tld) {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (tld=%q)", tld)
	}

	return nil
}

func isHostnameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
