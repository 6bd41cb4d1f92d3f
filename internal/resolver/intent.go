package resolver

import (
	"github.com/ndtrung/quickadd/internal/domain"
)

// Keyword sets are matched against the whole normalized input — exact
// membership only, no fuzzy matching. Vietnamese keywords are stored
// unaccented because Normalize strips diacritics.
var intentKeywords = map[domain.Intent][]string{
	domain.IntentExpense:  {"expense", "spend", "spent", "buy", "pay", "chi tieu", "chi", "mua", "tieu"},
	domain.IntentIncome:   {"income", "earn", "earned", "salary", "thu nhap", "luong", "tien ve"},
	domain.IntentTransfer: {"transfer", "move", "chuyen khoan", "chuyen tien", "chuyen"},
	domain.IntentLend:     {"lend", "lent", "loan", "debt", "cho muon", "cho vay", "ghi no"},
	domain.IntentRepay:    {"repay", "repaid", "repayment", "pay back", "tra no", "thu no", "tra"},
}

var keywordToIntent = func() map[string]domain.Intent {
	m := make(map[string]domain.Intent)
	for intent, words := range intentKeywords {
		for _, w := range words {
			m[w] = intent
		}
	}
	return m
}()

// ClassifyIntent maps free text to a transaction intent by exact keyword-set
// membership. Returns false (never a guess) on no match.
func ClassifyIntent(text string) (domain.Intent, bool) {
	intent, ok := keywordToIntent[Normalize(text)]
	return intent, ok
}
