// Package bankdetect resolves free text to a known bank/platform id by
// keyword matching. It is a pure lookup with no external dependencies.
package bankdetect

import (
	"strings"

	"banking-assistant-be/pkg/knowledge"
)

type pattern struct {
	keywords []string
	bank     string
}

// Patterns are checked in order; the first keyword hit wins.
var patterns = []pattern{
	{[]string{"sbi", "state bank"}, knowledge.BankSBI},
	{[]string{"hdfc"}, knowledge.BankHDFC},
	{[]string{"icici"}, knowledge.BankICICI},
	{[]string{"axis"}, knowledge.BankAxis},
	{[]string{"kotak"}, knowledge.BankKotak},
	{[]string{"google pay", "gpay"}, knowledge.BankGooglePay},
	{[]string{"paytm"}, knowledge.BankPaytm},
	{[]string{"phonepe", "phone pe"}, knowledge.BankPhonePe},
}

// Detect returns the bank/platform the text refers to, if any.
func Detect(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range patterns {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				return p.bank, true
			}
		}
	}
	return "", false
}
