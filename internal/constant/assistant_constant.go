package constant

// Synthetic intent labels reported for orchestrator-generated turns (the
// classifier never produces these).
const (
	IntentLoanCalculationResult = "loan_calculation_result"
	IntentLoanCalculatorPrompt  = "loan_calculator_prompt"
	IntentLoanDocuments         = "loan_documents"
	IntentLoanApplicationSteps  = "loan_application_steps"
	IntentError                 = "error"
)

const CalculatorPromptMessage = "Let's calculate your eligibility! 🧮\n\n" +
	"Please provide the following separated by commas:\n\n" +
	"1️⃣ Your monthly income (₹)\n" +
	"2️⃣ Existing monthly EMIs (₹)\n" +
	"3️⃣ Property value (₹)\n\n" +
	"**Example:** 80000, 15000, 5000000"

const CalculatorFormatErrorMessage = "❌ Please enter exactly 3 numbers separated by commas:\n\n" +
	"Format: income, existing_emi, property_value\n" +
	"Example: 80000, 15000, 5000000"

// Calculator option buttons offered after a loan-eligibility workflow.
var CalculatorOptions = []struct {
	Label string
	Value string
}{
	{"🧮 Calculate your loan eligibility", "calculate"},
	{"📄 Show required documents", "docs"},
	{"📋 Provide application steps", "steps"},
}

// LoanDocumentsTemplate takes the bank name.
const LoanDocumentsTemplate = "📄 **Required Documents for %s Home Loan:**\n\n" +
	"**Identity Proof:**\n" +
	"• PAN Card (mandatory)\n" +
	"• Aadhaar Card\n" +
	"• Passport/Voter ID/Driving License\n\n" +
	"**Address Proof:**\n" +
	"• Aadhaar Card\n" +
	"• Utility bills (electricity/water)\n" +
	"• Passport\n\n" +
	"**Income Proof:**\n" +
	"• Last 6 months' salary slips\n" +
	"• Last 2 years' ITR with computation\n" +
	"• Form 16\n" +
	"• Bank statements (6 months)\n\n" +
	"**Property Documents:**\n" +
	"• Sale deed/Agreement to sell\n" +
	"• Approved building plan\n" +
	"• NOC from builder\n" +
	"• Encumbrance certificate\n\n" +
	"**Additional:**\n" +
	"• Passport size photographs\n" +
	"• Processing fee cheque"

// LoanStepsTemplate takes the bank name three times (header, online, offline).
const LoanStepsTemplate = "📋 **%s Home Loan Application Steps:**\n\n" +
	"**Step 1: Check Eligibility** ✅\n" +
	"Use the loan calculator to verify your eligibility based on income, credit score, and EMI capacity.\n\n" +
	"**Step 2: Prepare Documents** 📄\n" +
	"Gather all required documents (identity, income, property papers).\n\n" +
	"**Step 3: Apply Online/Offline** 💻\n" +
	"• Online: Visit %s website → Home Loans → Apply Now\n" +
	"• Offline: Visit nearest %s branch\n\n" +
	"**Step 4: Property Evaluation** 🏠\n" +
	"Bank will conduct technical and legal evaluation of the property.\n\n" +
	"**Step 5: Loan Approval** ✅\n" +
	"Based on documents and property evaluation, loan will be sanctioned.\n\n" +
	"**Step 6: Disbursement** 💰\n" +
	"After signing the loan agreement, funds will be disbursed as per payment schedule.\n\n" +
	"**Timeline:** Typically 7-15 working days from application to disbursement."

// BankSelectionTemplate takes the humanized intent name.
const BankSelectionTemplate = "I can help you with %s. Which bank/platform are you using?"

// UnknownIntentTemplate takes the humanized intent name.
const UnknownIntentTemplate = "I detected your query is about '%s', but I don't have detailed guidance for this yet. Could you please rephrase or specify your bank?"

// UnsupportedBankTemplate takes the bank and the humanized intent name.
const UnsupportedBankTemplate = "Sorry, I don't have information for %s regarding %s."

const (
	LoanResultHealthyLine = "✅ You're eligible! Your debt-to-income ratio is healthy."
	LoanResultCautionLine = "⚠️ Caution: High debt ratio. Consider reducing EMIs or increasing income."
)
