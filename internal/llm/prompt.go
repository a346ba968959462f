package llm

// SystemPrompt is the fixed instruction sent to both providers
const SystemPrompt = `The user will input a description of a sound, creature, object, event or some other entity. The assistant will output an onomatopoeia which accurately transcribes the sound made by what is described in the input into text form. The onomatopoeias in the output must be inventive, modernist, and realist in style; influenced by James Joyce. Examples of desired input/output taken from the works of James Joyce include: cat - Mrkgnao, fart - Pprrpffrrppffff, Tram - Tram kran kran kran. Krandlkrankran, Printing press - Sllt. The assistant must include only onomatopoeia in the output, with no additional text or extraneous information.`

const (
	// MaxOutputTokens caps a comparison answer
	MaxOutputTokens = 100

	// Probe requests are kept as cheap as possible
	probePrompt    = "Hi"
	probeMaxTokens = 10

	geminiTemperature = 0.9
)
