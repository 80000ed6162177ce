package utils

import (
	"context"
	"fmt"
	"net"
	"strings"
)

const verifyRecordPrefix = "linkbridge-verify="

// VerificationRecord is the TXT record value a publisher must add for the
// given token.
func VerificationRecord(token string) string {
	return verifyRecordPrefix + token
}

// MatchVerificationRecord scans TXT record values for one carrying the token.
func MatchVerificationRecord(records []string, token string) bool {
	if token == "" {
		return false
	}
	want := VerificationRecord(token)
	for _, r := range records {
		if strings.TrimSpace(r) == want {
			return true
		}
	}
	return false
}

// CheckDomainTXT resolves the domain's TXT records and looks for the
// verification token.
func CheckDomainTXT(ctx context.Context, domain, token string) (bool, error) {
	var resolver net.Resolver
	records, err := resolver.LookupTXT(ctx, domain)
	if err != nil {
		return false, fmt.Errorf("lookup TXT %s: %w", domain, err)
	}
	return MatchVerificationRecord(records, token), nil
}
