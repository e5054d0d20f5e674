package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// PromptClassify is the constrained classification prompt. The only valid
// outputs are the four intent labels; anything else is coerced to UNKNOWN.
const PromptClassify = `Classify the following customer query into exactly one of these categories:
1. USER_GUIDE - Questions about how to use the software, features, tutorials, instructions
2. CONTRACT - Questions about contract details, expiration dates, pricing, purchased modules
3. GENERAL - General questions or greetings
4. UNKNOWN - Anything that fits none of the above

Query: %s

Respond with only the category name (USER_GUIDE, CONTRACT, GENERAL, or UNKNOWN).`

// Classification uses a low temperature for stable labels.
const ClassifyTemperature = 0.1

// Result sources
const (
	SourceKeyword = "keyword"
	SourceModel   = "model"
)
