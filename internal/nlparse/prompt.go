package nlparse

import (
	"strings"
)

// buildPrompt constructs the instruction string for one parse request. The
// reference-data bundle is inlined so the model only ever answers with names
// that actually exist.
func buildPrompt(text string, refs Context) string {
	var b strings.Builder

	b.WriteString("You are a transaction parser for a Vietnamese personal finance tracker.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Parse the user's free-text line into ONE transaction guess.\n")
	b.WriteString("- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n")
	b.WriteString("- Output a single JSON object.\n\n")

	b.WriteString("The object may have these fields; OMIT any field you have no opinion on:\n")
	b.WriteString("- \"intent\": one of \"expense\", \"income\", \"transfer\", \"lend\", \"repay\"\n")
	b.WriteString("- \"amount\": positive number in VND (expand shorthand: \"50k\" = 50000, \"2tr\" = 2000000)\n")
	b.WriteString("- \"people\": array of person names involved in a lend/repay\n")
	b.WriteString("- \"group\": a group name, if the whole group is involved\n")
	b.WriteString("- \"source_account\": account the money leaves (or enters, for income)\n")
	b.WriteString("- \"destination_account\": receiving account, transfers only\n")
	b.WriteString("- \"occurred_at\": string, ISO format \"YYYY-MM-DD\"\n")
	b.WriteString("- \"note\": short free-text note\n")
	b.WriteString("- \"split_bill\": boolean, whether the amount is shared\n")
	b.WriteString("- \"category\": a category name\n")
	b.WriteString("- \"shop\": a shop name\n")
	b.WriteString("- \"cashback_share_percent\": whole-number percent (8 means 8%)\n")
	b.WriteString("- \"cashback_share_fixed\": fixed VND amount\n\n")

	writeRefs(&b, "People", refs.People)
	writeRefs(&b, "Groups", refs.Groups)
	writeRefs(&b, "Accounts", refs.Accounts)
	writeRefs(&b, "Categories", refs.Categories)
	writeRefs(&b, "Shops", refs.Shops)

	b.WriteString("Rules:\n")
	b.WriteString("- Only use names from the lists above, spelled exactly as shown.\n")
	b.WriteString("- Never invent a person, account, category or shop.\n")
	b.WriteString("- Omit a field entirely rather than guessing.\n\n")
	b.WriteString("Return ONLY valid raw JSON.\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Do NOT use ```json or any Markdown.\n")
	b.WriteString("Output must begin with \"{\" and end with \"}\".\n\n")

	b.WriteString("User input:\n")
	b.WriteString(text)
	b.WriteString("\n")

	return b.String()
}

func writeRefs(b *strings.Builder, title string, refs []Ref) {
	b.WriteString(title + ":\n")
	if len(refs) == 0 {
		b.WriteString("  (none)\n\n")
		return
	}
	for _, r := range refs {
		b.WriteString("  - " + r.Name + "\n")
	}
	b.WriteString("\n")
}
