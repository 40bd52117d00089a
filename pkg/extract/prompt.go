package extract

import "strings"

// maxPromptChars caps how much recognised text travels to the model; scanned
// forms rarely carry meaningful content past this point and oversized
// prompts slow the call down.
const maxPromptChars = 15000

const defaultPrompt = `You are a PDF form data extraction assistant. Analyze the provided text from a scanned form and extract every field label and its value into a structured JSON object holding the actual data values.

Rules:
1. Extract all field labels and their corresponding values from the form
2. Group related fields into nested objects (e.g., "applicantDetails", "contactInfo", "serviceRequest")
3. Use descriptive field names in camelCase
4. For checkboxes/radio buttons, use boolean values (true/false) or the selected option as a string
5. Extract dates as strings in the format found in the document
6. Extract numbers as numbers (not strings) when they represent quantities or amounts
7. Return ONLY the actual data values extracted from the form, NOT a JSON Schema
8. Create a hierarchical structure that reflects the form's organization
9. Do not hallucinate data - only extract what is clearly present in the text
10. If a field is empty or unclear, omit it or set it to null

Now extract the actual field values from this text:`

// BuildPrompt assembles the extraction prompt for a blob of recognised text.
// An empty customPrompt selects the built-in instructions. The text portion
// is truncated to keep the request bounded.
func BuildPrompt(text, customPrompt string) string {
	prompt := strings.TrimSpace(customPrompt)
	if prompt == "" {
		prompt = defaultPrompt
	}
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}
	return prompt + "\n\n" + text
}
