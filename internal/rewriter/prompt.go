package rewriter

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are Ask AYO, a financial education assistant that translates jargon into plain English with a conversational, confident tone."

// user prompt for one rewrite
func buildPrompt(term, original, userContext string) string {
	var b strings.Builder

	b.WriteString("You are Ask AYO, a financial jargon translator that helps people understand financial terms in plain English.\n\n")
	fmt.Fprintf(&b, "A user is confused by this explanation of \"%s\":\n\n", term)
	fmt.Fprintf(&b, "\"%s\"\n\n", original)
	b.WriteString(`Please rewrite this explanation to be:
- Clearer and easier to understand
- More conversational and engaging
- Include a real-world example or analogy
- Keep it concise (60-120 words)
- Use the Ask AYO tone: confident, accessible, authentic, supportive

`)

	if userContext != "" {
		fmt.Fprintf(&b, "Additional context: %s\n\n", userContext)
	}

	b.WriteString("Rewrite the explanation now:")

	return b.String()
}
