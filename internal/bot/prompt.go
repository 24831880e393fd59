package bot

import (
	"strings"

	"tourguide/internal/store"
)

const systemPrompt = "You are a knowledgeable and friendly tour guide assistant. " +
	"Remember the conversation context and maintain consistency across questions."

const noContext = "No relevant information was found in the documents."

// buildPrompt assembles the user message: retrieved chunks tagged with their
// source, then the question, with an instruction to answer from the supplied
// context only.
func buildPrompt(question string, results []store.Result) string {
	var buf strings.Builder

	buf.WriteString("Use the following information to answer the user's question.\n\n")
	buf.WriteString("IMPORTANT INSTRUCTIONS:\n")
	buf.WriteString("- Answer using only the supplied context\n")
	buf.WriteString("- If the context doesn't cover the question, politely say so\n")
	buf.WriteString("- If the user asks follow-up questions, refer to the destination discussed earlier\n\n")

	buf.WriteString("CONTEXT FROM DOCUMENTS:\n")
	if len(results) == 0 {
		buf.WriteString(noContext)
		buf.WriteString("\n")
	} else {
		for i, r := range results {
			if i > 0 {
				buf.WriteString("\n\n")
			}
			buf.WriteString("[From " + r.Source + "]\n")
			buf.WriteString(r.Text)
		}
		buf.WriteString("\n")
	}

	buf.WriteString("\nCURRENT USER QUESTION: ")
	buf.WriteString(question)
	buf.WriteString("\n\nANSWER (be helpful, friendly, and maintain conversation context):")

	return buf.String()
}
