package response

// Static replies used when the language model cannot answer.
const (
	DegradedWithSourcesMessage = "I’m having trouble reaching the AI service, but here are some relevant details I can share based on our data. Ask me a more specific question if you’d like."
	UnavailableMessage         = "I’m having trouble reaching the AI service right now. Please try again shortly or contact our team for help."
)

// DegradedReason says why a Reply carries a static message instead of model text.
type DegradedReason string

const (
	NotDegraded DegradedReason = ""
	// GenerationFailed: retrieval worked but the model call failed.
	GenerationFailed DegradedReason = "generation_failed"
	// AssistantUnavailable: the pipeline failed before generation.
	AssistantUnavailable DegradedReason = "assistant_unavailable"
)
