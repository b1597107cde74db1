package interp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// systemPrompt instructs the AI interpreter to answer with a single intent
// JSON object and nothing else.
const systemPrompt = `You are a PC control assistant. Convert natural language to JSON commands.

Available commands:
- open_app: Launch applications (e.g., "open notepad")
- close_app: Close applications (e.g., "close chrome")
- open_website: Open websites in browser (e.g., "open youtube", "go to google.com")
- type_text: Type text using keyboard (e.g., "type hello world", "write this is a test")
- press_key: Press keyboard keys (e.g., "press enter", "press ctrl+c", "press f5")

Respond with valid JSON only:

Examples:
User: "open calculator"
{"intent": "open_app", "app_name": "calculator"}

User: "close notepad"
{"intent": "close_app", "app_name": "notepad"}

User: "open youtube"
{"intent": "open_website", "url": "youtube.com"}

User: "type hello world"
{"intent": "type_text", "text": "hello world"}

User: "press ctrl+c"
{"intent": "press_key", "key": "ctrl+c"}

Extract the app name, website URL, text to type, or key to press and return the appropriate command.`

// parseIntent extracts a single Intent from the model's text reply.
// Replies wrapped in markdown code fences or surrounded by prose are
// tolerated; the first parseable JSON object wins.
func parseIntent(text string) (*Intent, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var intent Intent
	if err := json.Unmarshal([]byte(cleaned), &intent); err == nil {
		if err := intent.Validate(); err != nil {
			return nil, err
		}
		return &intent, nil
	}

	// Scan for the first valid JSON object in case the model added prose.
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] != '{' {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader([]byte(cleaned[i:])))
		if err := dec.Decode(&intent); err == nil {
			if err := intent.Validate(); err != nil {
				return nil, err
			}
			return &intent, nil
		}
	}

	return nil, fmt.Errorf("could not parse intent JSON from reply: %.200s", text)
}
