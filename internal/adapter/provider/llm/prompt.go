package llm

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/vocabquiz/internal/provider"
)

const systemPrompt = `You write vocabulary content for primary-school pupils in England (Years 3 to 6) preparing for the 11+ exam.
Always use British English spelling and vocabulary (colour, organise, favourite, mum, pavement).
Reply with a single JSON object and nothing else: no markdown, no explanations.`

// audience describes the pupils a level is written for.
func audience(level string) string {
	switch level {
	case "level1":
		return "Year 3 pupils (age 7-8): short, concrete, everyday sentences"
	case "level2":
		return "Year 4 pupils (age 8-9): short declarative sentences with concrete referents"
	case "level3":
		return "Year 5 pupils (age 9-10): richer sentences; perfect tenses and abstract objects are fine"
	default:
		return "Year 6 pupils (age 10-11): complex sentences; past-perfect constructions and abstract ideas are fine"
	}
}

func buildEntryPrompt(req provider.EntryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a dictionary entry for the word %q for %s.\n", req.Word, audience(req.Level.String()))
	if m := strings.TrimSpace(req.CurrentMeaning); m != "" {
		fmt.Fprintf(&b, "Keep this sense of the word: %q.\n", m)
	}
	b.WriteString(`
Output ONLY a JSON object matching this exact schema:
{
  "meaning": "<definition, 35 to 60 characters>",
  "synonym1": "<synonym, same part of speech>",
  "synonym2": "<a different synonym, same part of speech>",
  "antonym1": "<antonym, same part of speech>",
  "antonym2": "<a different antonym, same part of speech>",
  "example_sentence": "<one complete sentence using the word>"
}

Rules:
- Synonyms and antonyms must not repeat each other or the word itself
- If the word has several senses, the example sentence must use the sense of the meaning
`)
	fmt.Fprintf(&b, "- The example sentence must have at least %d words and contain %q or a regular inflection of it\n",
		req.Level.MinExampleWords(), req.Word)
	return b.String()
}

func buildSentencePrompt(req provider.SentenceRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d different quiz sentences for the word %q for %s.\n", req.Count, req.Word, audience(req.Level.String()))
	if m := strings.TrimSpace(req.Meaning); m != "" {
		fmt.Fprintf(&b, "Use the sense: %q.\n", m)
	}
	fmt.Fprintf(&b, `
Output ONLY a JSON object matching this exact schema:
{"sentences": ["<sentence>", "..."]}

Rules:
- Each sentence uses %q exactly once, so that it can be replaced by a blank
- Never use the word as a possessive (no "%s's")
- Each sentence has at least %d characters and gives context that only fits this word
- Do not start with generic openings such as "They decided to", "It is important to" or "The team worked together to"
- No two sentences may share the same idea
`, req.Word, req.Word, req.Level.MinSentenceChars()+len(req.Word))
	return b.String()
}
