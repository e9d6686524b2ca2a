package knowledge

// Static reference data. Loaded once at startup and never mutated.

func intentData() map[string]*IntentKnowledge {
	return map[string]*IntentKnowledge{
		IntentGreeting: {
			Kind: KindInfo,
			Message: "Hello! 👋 I'm your Banking & Payments Assistant. I can help you with:\n\n" +
				"• Password resets & account security\n" +
				"• Account statements & transaction history\n" +
				"• Lost/blocked cards\n" +
				"• UPI payment issues\n" +
				"• Balance inquiries\n" +
				"• And much more!\n\n" +
				"What do you need help with today?",
		},

		IntentGoodbye: {
			Kind: KindInfo,
			Message: "Thank you for using our Banking Assistant! Have a great day! 😊\n\n" +
				"Feel free to come back anytime you need help with your banking needs.",
		},

		IntentThanks: {
			Kind: KindInfo,
			Message: "You're most welcome! 😊 I'm always here to help.\n\n" +
				"Is there anything else I can assist you with today?",
		},

		IntentPasswordReset: {
			BankOrder: []string{BankSBI, BankHDFC, BankICICI, BankAxis, BankKotak, BankGooglePay, BankPaytm, BankPhonePe},
			Banks: map[string]*WorkflowEntry{
				BankSBI: {
					Message: "I can help you reset your SBI password. Which service do you need help with?",
					Workflows: []Workflow{
						{
							Name: "Internet Banking (OnlineSBI)",
							Steps: []string{
								"Visit https://retail.onlinesbi.sbi/retail/login.htm",
								"Click 'Forgot Login Password'",
								"Enter your Username",
								"Enter OTP sent to registered mobile",
								"Create new password (must include uppercase, lowercase, number, and special character)",
							},
							Link: "https://retail.onlinesbi.sbi/retail/login.htm",
						},
						{
							Name: "YONO App",
							Steps: []string{
								"Open YONO SBI app",
								"Tap 'Forgot Password'",
								"Enter CIF/Username",
								"Verify via OTP",
								"Set new password",
							},
						},
					},
				},
				BankHDFC: {
					Message: "I can help you reset your HDFC password.",
					Workflows: []Workflow{
						{
							Name: "NetBanking",
							Steps: []string{
								"Go to https://netbanking.hdfcbank.com",
								"Click 'Forgot IPIN'",
								"Enter Customer ID",
								"Verify via Debit Card details",
								"Enter OTP sent to registered mobile",
								"Create new password",
							},
							Link: "https://netbanking.hdfcbank.com",
						},
					},
				},
				BankICICI: {
					Message: "To reset your ICICI password:",
					Workflows: []Workflow{
						{
							Name: "Internet Banking",
							Steps: []string{
								"Visit https://infinity.icicibank.com",
								"Click 'Forgot User ID/Password'",
								"Enter registered mobile/email",
								"Verify OTP",
								"Create new password",
							},
							Link: "https://infinity.icicibank.com",
						},
					},
				},
				BankAxis: {
					Message: "To reset your Axis Bank password:",
					Workflows: []Workflow{
						{
							Name: "Internet Banking",
							Steps: []string{
								"Go to https://retail.axisbank.co.in",
								"Click 'Forgot Password'",
								"Enter Customer ID",
								"Verify via registered mobile",
								"Create new password",
							},
							Link: "https://retail.axisbank.co.in",
						},
					},
				},
				BankKotak: {
					Message: "To reset your Kotak Mahindra password:",
					Workflows: []Workflow{
						{
							Name: "Net Banking",
							Steps: []string{
								"Visit https://netbanking.kotak.com",
								"Click 'Forgot Password'",
								"Enter CRN/Customer ID",
								"Verify via OTP",
								"Set new password",
							},
							Link: "https://netbanking.kotak.com",
						},
					},
				},
				BankGooglePay: {
					Message: "To reset your Google Pay PIN:",
					Workflows: []Workflow{
						{
							Name: "Reset Google Pay PIN",
							Steps: []string{
								"Open Google Pay app",
								"Tap profile picture (top right)",
								"Go to Settings → Privacy & Security",
								"Tap 'Change Google Pay PIN'",
								"Verify identity via linked bank account",
								"Enter new 4-6 digit PIN",
							},
						},
					},
				},
				BankPaytm: {
					Message: "To reset your Paytm password:",
					Workflows: []Workflow{
						{
							Name: "Reset Password",
							Steps: []string{
								"Open Paytm app",
								"Tap Profile → Settings",
								"Select 'Change Password'",
								"Verify via OTP",
								"Enter new password",
							},
						},
					},
				},
				BankPhonePe: {
					Message: "To reset your PhonePe PIN:",
					Workflows: []Workflow{
						{
							Name: "Reset PIN",
							Steps: []string{
								"Open PhonePe app",
								"Tap Profile icon",
								"Go to Settings",
								"Select 'Change PIN'",
								"Verify via OTP",
								"Enter new PIN",
							},
						},
					},
				},
			},
		},

		IntentAccountStatement: {
			BankOrder: []string{BankSBI, BankHDFC, BankICICI, BankAxis, BankKotak},
			Banks: map[string]*WorkflowEntry{
				BankSBI: {
					Message: "Here's how to get your SBI account statement:",
					Workflows: []Workflow{
						{
							Name: "YONO App",
							Steps: []string{
								"Login to YONO SBI",
								"Go to Accounts → Select account",
								"Tap Statement",
								"Select date range (up to 6 months)",
								"Download PDF or send to email",
							},
						},
						{
							Name: "Internet Banking",
							Steps: []string{
								"Login to OnlineSBI",
								"Go to 'Account Statement'",
								"Select account and date range",
								"Download statement (PDF/Excel)",
							},
							Link: "https://retail.onlinesbi.sbi",
						},
						{
							Name: "SMS Service",
							Steps: []string{
								"Send SMS: MSTMT to 9223766666",
								"You'll receive last 5 transactions via SMS",
							},
						},
					},
				},
				BankHDFC: {
					Message: "To get your HDFC account statement:",
					Workflows: []Workflow{
						{
							Name: "NetBanking",
							Steps: []string{
								"Login to HDFC NetBanking",
								"Go to Accounts → Statement",
								"Select date range",
								"Download PDF or send to email",
							},
						},
						{
							Name: "Mobile Banking",
							Steps: []string{
								"Open HDFC Mobile Banking app",
								"Tap on Account",
								"Select 'Account Statement'",
								"Choose period and download",
							},
						},
					},
				},
				BankICICI: {
					Message: "To get your ICICI account statement:",
					Workflows: []Workflow{
						{
							Name: "Internet Banking",
							Steps: []string{
								"Login to ICICI NetBanking",
								"Go to Accounts → Statement",
								"Select account and date range",
								"Download statement",
							},
						},
						{
							Name: "iMobile App",
							Steps: []string{
								"Open iMobile app",
								"Tap Accounts",
								"Select 'Statement'",
								"Download or email statement",
							},
						},
					},
				},
				BankAxis: {
					Message: "To get your Axis account statement:",
					Workflows: []Workflow{
						{
							Name: "Internet Banking",
							Steps: []string{
								"Login to Axis NetBanking",
								"Go to Accounts → Statement",
								"Select period",
								"Download statement",
							},
						},
					},
				},
				BankKotak: {
					Message: "To get your Kotak account statement:",
					Workflows: []Workflow{
						{
							Name: "Net Banking",
							Steps: []string{
								"Login to Kotak NetBanking",
								"Go to Accounts → Statement",
								"Select date range",
								"Download or email",
							},
						},
					},
				},
			},
		},

		IntentLoanEligibility: {
			BankOrder: []string{BankSBI, BankHDFC, BankICICI},
			Banks: map[string]*WorkflowEntry{
				BankSBI: {
					Message:             "Let's check your SBI loan eligibility!",
					CalculatorAvailable: true,
					Workflows: []Workflow{
						{
							Name: "Home Loan Eligibility",
							Steps: []string{
								"Age: 21-65 years",
								"Min income: ₹25,000/month",
								"Credit score: 650+",
								"Employment: Min 2 years",
								"Loan Amount: Up to ₹5 crore",
								"Interest Rate: 8.50% - 9.65% p.a.",
							},
							Link: "https://sbi.co.in/homeloan",
						},
						{
							Name: "Personal Loan Eligibility",
							Steps: []string{
								"Age: 21-58 years",
								"Min income: ₹15,000/month",
								"Credit score: 700+",
								"Loan Amount: Up to ₹20 lakh",
								"Interest Rate: 9.60% - 11.15% p.a.",
							},
						},
					},
				},
				BankHDFC: {
					Message:             "I can help with HDFC loan eligibility!",
					CalculatorAvailable: true,
					Workflows: []Workflow{
						{
							Name: "Home Loan",
							Steps: []string{
								"Age: 21-65 years",
								"Min income: ₹25,000/month",
								"Credit score: 650+",
								"Work experience: 2+ years",
								"Loan Amount: Up to ₹10 crore",
								"Interest Rate: 8.35% - 9.50% p.a.",
							},
							Link: "https://hdfc.com/homeloan",
						},
					},
				},
				BankICICI: {
					Message:             "Let me show ICICI loan options!",
					CalculatorAvailable: true,
					Workflows: []Workflow{
						{
							Name: "Home Loan",
							Steps: []string{
								"Age: 23-65 years",
								"Min income: ₹30,000/month",
								"Credit score: 700+",
								"Loan Amount: Up to ₹15 crore",
								"Interest Rate: 8.40% - 9.55% p.a.",
							},
						},
					},
				},
			},
		},

		IntentCardLostBlocked: {
			BankOrder: []string{BankSBI, BankHDFC, BankICICI},
			Banks: map[string]*WorkflowEntry{
				BankSBI: {
					Message: "⚠️ URGENT: Block your SBI card immediately:",
					Workflows: []Workflow{
						{
							Name: "Customer Care (24x7)",
							Steps: []string{
								"Call: 1800 11 2211 or 1800 425 3800",
								"Select 'Block Card' option",
								"Provide card details for verification",
								"Card will be blocked instantly",
							},
							Urgent: true,
						},
						{
							Name: "YONO App",
							Steps: []string{
								"Login to YONO SBI",
								"Go to Cards",
								"Select your card",
								"Tap 'Block Card'",
								"Confirm blocking",
							},
							Urgent: true,
						},
					},
				},
				BankHDFC: {
					Message: "⚠️ Block your HDFC card immediately:",
					Workflows: []Workflow{
						{
							Name: "PhoneBanking",
							Steps: []string{
								"Call: 1800 266 4332",
								"Request card blocking",
								"Verify identity",
								"Card blocked immediately",
							},
							Urgent: true,
						},
					},
				},
				BankICICI: {
					Message: "⚠️ Block your ICICI card immediately:",
					Workflows: []Workflow{
						{
							Name: "Customer Care",
							Steps: []string{
								"Call: 1860 120 7777",
								"Request card blocking",
								"Verify identity",
								"Card blocked instantly",
							},
							Urgent: true,
						},
					},
				},
			},
		},

		IntentUPIPaymentFailure: {
			BankOrder: []string{BankGooglePay, BankPaytm, BankPhonePe},
			Banks: map[string]*WorkflowEntry{
				BankGooglePay: {
					Message: "If your Google Pay payment failed:",
					Workflows: []Workflow{
						{
							Name: "Check Payment Status",
							Steps: []string{
								"Open Google Pay",
								"Tap Activity/Transactions",
								"Find the failed transaction",
								"Check status: If money deducted, auto-refund in 5-7 business days",
								"Tap transaction → 'Get Help' to raise dispute if needed",
							},
						},
					},
				},
				BankPaytm: {
					Message: "For Paytm payment failure:",
					Workflows: []Workflow{
						{
							Name: "Check and Resolve",
							Steps: []string{
								"Open Paytm",
								"Go to Passbook",
								"Find failed transaction",
								"Tap → 'Raise Issue'",
								"Refund will be processed in 7 working days",
							},
						},
					},
				},
				BankPhonePe: {
					Message: "For PhonePe payment failure:",
					Workflows: []Workflow{
						{
							Name: "Resolve Failure",
							Steps: []string{
								"Open PhonePe",
								"Go to History",
								"Find failed payment",
								"Tap 'Report Issue'",
								"Refund in 5-7 business days",
							},
						},
					},
				},
			},
		},

		IntentBalanceCheck: {
			Kind:    KindInfo,
			Message: "To check your account balance, you can use any of these methods based on your bank:",
		},

		IntentMiniStatement: {
			Kind:    KindInfo,
			Message: "For a mini statement (last few transactions), please specify your bank and I'll provide the quickest method.",
		},

		IntentCardActivation: {
			Kind:    KindInfo,
			Message: "To activate your new debit/credit card, please tell me which bank issued the card.",
		},

		IntentFundTransfer: {
			Kind: KindInfo,
			Message: "For fund transfers, you have multiple options:\n\n" +
				"• NEFT/RTGS (for bank-to-bank transfers)\n" +
				"• IMPS (immediate payment)\n" +
				"• UPI (instant transfers)\n\n" +
				"Which method would you like help with?",
		},

		IntentChequeStatus: {
			Kind:    KindInfo,
			Message: "To check cheque status, please specify your bank. I'll guide you through their specific process.",
		},

		IntentUpdateMobileNumber: {
			Kind: KindInfo,
			Message: "To update your mobile number, you typically need to:\n\n" +
				"1. Visit your bank branch with ID proof\n" +
				"2. Fill mobile number update form\n" +
				"3. Or use NetBanking (if already linked)\n\n" +
				"Which bank's mobile number do you want to update?",
		},
	}
}
