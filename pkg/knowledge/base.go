package knowledge

// Base is the read-only knowledge base accessor. Missing intents and
// missing banks are ordinary not-found outcomes, never errors.
type Base struct {
	intents map[string]*IntentKnowledge
}

// NewBase builds the knowledge base from the static reference data.
func NewBase() *Base {
	return &Base{intents: intentData()}
}

// Lookup returns the knowledge entry for an intent, if any.
func (b *Base) Lookup(intent string) (*IntentKnowledge, bool) {
	k, ok := b.intents[intent]
	return k, ok
}

// Resolve returns the workflow entry for (intent, bank) on bank-keyed
// intents. Simple intents and unknown banks both resolve to not-found.
func (b *Base) Resolve(intent, bank string) (*WorkflowEntry, bool) {
	k, ok := b.intents[intent]
	if !ok || k.Simple() {
		return nil, false
	}
	entry, ok := k.Banks[bank]
	return entry, ok
}

// AvailableBanks lists the banks supported for a bank-keyed intent, in
// presentation order. Nil for simple or unknown intents.
func (b *Base) AvailableBanks(intent string) []string {
	k, ok := b.intents[intent]
	if !ok || k.Simple() {
		return nil
	}
	return k.BankOrder
}
