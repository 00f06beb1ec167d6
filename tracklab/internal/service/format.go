package service

import (
	"fmt"
	"strings"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/pkg/validate"
)

const (
	studentPrefix = "STU"
	staffPrefix   = "STF"
)

// FormatExternalCode derives a user's borrower code from their role and id, e.g. STU-00006.
func FormatExternalCode(role auth.Role, userID int64) string {
	prefix := staffPrefix
	if role == auth.RoleStudent {
		prefix = studentPrefix
	}
	return fmt.Sprintf("%s-%05d", prefix, userID)
}

func ValidateExternalCode(code string) bool {
	return validate.ExternalCode(code)
}

// FormatContact keeps only digits and renders 11-digit mobile numbers
// starting with 09 as 0912-345-6789.
func FormatContact(raw string) string {
	clean := strings.Map(func(r rune) rune {
		if isDigit(r) {
			return r
		}
		return -1
	}, raw)
	if len(clean) == 11 && strings.HasPrefix(clean, "09") {
		return clean[:4] + "-" + clean[4:7] + "-" + clean[7:]
	}
	return clean
}

func validContact(raw string) bool {
	for _, r := range strings.ReplaceAll(strings.TrimSpace(raw), "-", "") {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
