package hfinference

import "time"

const (
	// DefaultAPIURL is the Hugging Face router chat-completions endpoint.
	DefaultAPIURL = "https://router.huggingface.co/v1/chat/completions"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// Generation settings: deterministic output, bounded length.
	maxTokens   = 500
	temperature = 0.0
)

// extractionPrompt instructs the model to return a bare JSON array of tasks.
// The user text is interpolated at the end.
const extractionPrompt = `You are a helpful assistant. From the following text, extract a list of distinct, actionable tasks. For each task, provide a "title" and optional "notes". Respond ONLY with a JSON array of tasks. Do not include any other text or explanation.

Example Input:
"I need to buy groceries: milk, eggs, bread. Also, call mom by end of day. And prepare the presentation slides for tomorrow's meeting."
Example Output:
[
  {"title": "Buy groceries", "notes": "milk, eggs, bread"},
  {"title": "Call mom", "notes": "by end of day"},
  {"title": "Prepare presentation slides", "notes": "for tomorrow's meeting"}
]

Example Input:
"Tomorrow, I have to finish the report and send it to Sarah. Don't forget to pay the bills online by the end of the week."
Example Output:
[
  {"title": "Finish report", "notes": "send to Sarah"},
  {"title": "Pay bills", "notes": "online by end of week"}
]

Now, extract tasks from this text:
%q`
