package knowledge

// Customer support reference data, keyed by bank/platform id.
var supportReferences = map[string]*SupportReference{
	BankSBI: {
		Bank:              BankSBI,
		AccountManagement: "https://sbi.co.in/web/customer-care/customer-care",
		FraudRisk:         "https://sbi.co.in/web/yono/blog/tackling-unauthorised-transactions-together",
		PaymentProblem:    "https://www.sbiepay.sbi/complainManagement/userValidation",
		InvestmentInfo:    "https://sbifunds.com",
		Helpline:          "1800 1234, 1800 2100, 1800 11 2211, 1800 425 3800",
	},
	BankHDFC: {
		Bank:              BankHDFC,
		AccountManagement: "https://www.hdfcbank.com/personal/help",
		FraudRisk:         "https://www.hdfcbank.com/personal/help/report-fraud",
		PaymentProblem:    "https://www.hdfcbank.com/personal/help",
		InvestmentInfo:    "https://www.hdfcfund.com",
		Helpline:          "1800 202 6161",
	},
	BankICICI: {
		Bank:              BankICICI,
		AccountManagement: "https://www.icicibank.com/Personal-Banking/customer-care.page",
		FraudRisk:         "https://www.icicibank.com/customer-care/raise-customer-complaint.page",
		PaymentProblem:    "https://www.icicibank.com/Support/Report-Fraud.page",
		InvestmentInfo:    "https://www.icicipruamc.com",
		Helpline:          "1860 120 7777, 1800 108 4747",
	},
	BankGooglePay: {
		Bank:              BankGooglePay,
		AccountManagement: "https://support.google.com/googlepay/answer/9244912?hl=en",
		FraudRisk:         "https://www.actionfraud.org.uk/google-pay-scam-fraud/",
		PaymentProblem:    "https://support.google.com/pay/india/contact/report_activity",
		InvestmentInfo:    "https://economictimes.com/wealth/personal-finance-news/google-pay-users-can-now-use-etmoney-to-invest-in-mutual-funds-nps/articleshow/78823074.cms",
		Helpline:          "1800-419-0157",
	},
	BankPaytm: {
		Bank:              BankPaytm,
		AccountManagement: "https://paytm.com/help/customer-support",
		FraudRisk:         "https://paytm.com/blog/security/",
		PaymentProblem:    "https://paytm.com/help/support/contactus",
		InvestmentInfo:    "https://paytm.com/investments/mutual-funds",
		Helpline:          "0120-4456-456",
	},
}

// SupportFor returns the support reference for a bank, if one exists.
func SupportFor(bank string) (*SupportReference, bool) {
	ref, ok := supportReferences[bank]
	return ref, ok
}
