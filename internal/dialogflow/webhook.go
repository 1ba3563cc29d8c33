// Package dialogflow defines the webhook envelope exchanged with the hosted
// NLU platform. The platform does all speech/text understanding, intent
// classification and slot filling; this service only sees the structured
// result.
package dialogflow

// Intent identifies the recognized user goal.
type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Context is a platform-held slice of conversation memory. Parameters set on
// an output context in an earlier turn arrive back here on later turns.
type Context struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount,omitempty"`
	Parameters    map[string]any `json:"parameters,omitempty"`
}

// QueryResult carries the recognized intent and extracted parameters for one
// user turn.
type QueryResult struct {
	QueryText      string         `json:"queryText,omitempty"`
	Parameters     map[string]any `json:"parameters"`
	Intent         Intent         `json:"intent"`
	OutputContexts []Context      `json:"outputContexts,omitempty"`
	LanguageCode   string         `json:"languageCode,omitempty"`
}

// WebhookRequest is the fulfillment payload the platform POSTs to /webhook.
type WebhookRequest struct {
	ResponseID  string      `json:"responseId,omitempty"`
	Session     string      `json:"session,omitempty"`
	QueryResult QueryResult `json:"queryResult"`
}

// Text is a block of display/speech lines.
type Text struct {
	Text []string `json:"text"`
}

// Message is one rich-content block in a fulfillment response.
type Message struct {
	Text *Text `json:"text,omitempty"`
}

// WebhookResponse is what the platform relays back to the end-user channel.
type WebhookResponse struct {
	FulfillmentText     string    `json:"fulfillmentText"`
	FulfillmentMessages []Message `json:"fulfillmentMessages,omitempty"`
}

// NewTextResponse builds a response carrying a single text answer.
func NewTextResponse(text string) *WebhookResponse {
	return &WebhookResponse{
		FulfillmentText: text,
		FulfillmentMessages: []Message{
			{Text: &Text{Text: []string{text}}},
		},
	}
}
