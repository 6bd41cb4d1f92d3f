package domain

import (
	"time"
)

// Intent is the high-level transaction category chosen early in the wizard.
type Intent string

const (
	IntentExpense  Intent = "expense"
	IntentIncome   Intent = "income"
	IntentTransfer Intent = "transfer"
	IntentLend     Intent = "lend"
	IntentRepay    Intent = "repay"
)

// Valid reports whether i is one of the known intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentExpense, IntentIncome, IntentTransfer, IntentLend, IntentRepay:
		return true
	}
	return false
}

// IsDebt reports whether the intent involves other people (lend/repay).
func (i Intent) IsDebt() bool {
	return i == IntentLend || i == IntentRepay
}

// TransactionType is the storage-level type the intent maps to.
type TransactionType string

const (
	TypeExpense   TransactionType = "expense"
	TypeIncome    TransactionType = "income"
	TypeTransfer  TransactionType = "transfer"
	TypeDebt      TransactionType = "debt"
	TypeRepayment TransactionType = "repayment"
)

// TransactionType maps the wizard intent to the storage-level transaction type:
// lend becomes debt, repay becomes repayment, everything else passes through.
func (i Intent) TransactionType() TransactionType {
	switch i {
	case IntentLend:
		return TypeDebt
	case IntentRepay:
		return TypeRepayment
	default:
		return TransactionType(i)
	}
}

// CashbackMode classifies how a transaction's cashback is sourced.
type CashbackMode string

const (
	CashbackNone        CashbackMode = "none_back"
	CashbackVoluntary   CashbackMode = "voluntary"
	CashbackRealFixed   CashbackMode = "real_fixed"
	CashbackRealPercent CashbackMode = "real_percent"
)

// AccountType is the categorical kind of an account.
type AccountType string

const (
	AccountBank       AccountType = "bank"
	AccountWallet     AccountType = "wallet"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
	AccountCredit     AccountType = "credit"
	AccountSystem     AccountType = "system"
)

// Person is a reference-data record. A Person with IsGroup set represents a
// named collection of other people; its members carry the group's id in
// GroupID. Exactly one person is the application owner.
type Person struct {
	ID      string
	Name    string
	IsGroup bool
	GroupID string // parent group id for members, empty otherwise
	IsOwner bool
}

// Account is a reference-data record. HasCashback reports whether the account
// has a cashback program configured.
type Account struct {
	ID          string
	Name        string
	Type        AccountType
	HasCashback bool
}

// Category is a reference-data record; ParentID is empty for top-level
// categories.
type Category struct {
	ID       string
	Name     string
	ParentID string
}

// Shop is a reference-data record.
type Shop struct {
	ID   string
	Name string
}

// Template is a saved quick-add preset. Its payload carries storage-level ids,
// not live objects.
type Template struct {
	ID      string
	Name    string
	Payload TemplatePayload
}

// TemplatePayload mirrors the Draft's storage-level fields.
type TemplatePayload struct {
	Intent               Intent
	Amount               float64
	SourceAccountID      string
	DestinationAccountID string
	PersonIDs            []string
	GroupID              string
	CategoryID           string
	ShopID               string
	Note                 string
	SplitBill            *bool
	CashbackSharePercent float64
	CashbackShareFixed   float64
}

// TransactionPayload is the final creation payload handed to the transaction
// submission collaborator.
type TransactionPayload struct {
	Type                 TransactionType
	Amount               float64
	SourceAccountID      string
	DestinationAccountID string
	PersonIDs            []string
	OccurredAt           time.Time
	Note                 string
	SplitEnabled         bool
	CategoryID           string
	ShopID               string

	// CashbackShareFraction is fractional (0.08, not 8).
	CashbackShareFraction float64
	CashbackShareFixed    float64
	CashbackMode          CashbackMode

	ReceiptGCSURI string
}
