package usecase

// Log prefixes
const (
	LogPrefixHandle = "internal.chat.usecase.Handle"
)

// Deterministic answers used when a path cannot or must not reach the
// response generator.
const (
	// MsgSQLRejected is the safe refusal when generated SQL fails
	// validation. The statement is never executed.
	MsgSQLRejected = "I can't safely look that up in our contract records. " +
		"Could you rephrase your question? If the problem persists, our support team can help."

	// MsgGeneratorUnavailable is the degraded answer when the response
	// generator itself is down.
	MsgGeneratorUnavailable = "I'm unable to retrieve that information right now. " +
		"Please try again in a moment."

	// MsgUnknownIntent answers utterances that match no known category.
	MsgUnknownIntent = "I'm not sure I understand. I can help with questions about " +
		"using the software (guides, features, how-tos) or about your contract " +
		"(expiration, pricing, purchased modules)."

	// MsgGeneralFallback answers greetings when the generator is down.
	MsgGeneralFallback = "Hello! I can help with questions about using the software " +
		"or about your contract details."
)
