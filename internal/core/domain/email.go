package domain

// Category is the binary outcome of email classification. Classification
// never fails: content without a recognized keyword defaults to
// CategoryUnproductive.
type Category string

const (
	CategoryProductive   Category = "Produtivo"
	CategoryUnproductive Category = "Improdutivo"
)

type InputKind int

const (
	InputEmpty InputKind = iota
	InputText
	InputFile
)

// RawInput is the request payload resolved once at the HTTP boundary:
// a pasted text body, an uploaded file, or nothing at all.
type RawInput struct {
	Kind     InputKind
	Text     string
	Filename string
	Data     []byte
}

func TextInput(text string) RawInput {
	return RawInput{Kind: InputText, Text: text}
}

func FileInput(filename string, data []byte) RawInput {
	return RawInput{Kind: InputFile, Filename: filename, Data: data}
}

func EmptyInput() RawInput {
	return RawInput{Kind: InputEmpty}
}

// ReplyResult is the terminal artifact of the processing pipeline.
// Generated reports whether SuggestedResponse came from the completion
// service; when false it holds a fixed fallback message and the category
// is still trustworthy.
type ReplyResult struct {
	Category          Category `json:"category"`
	SuggestedResponse string   `json:"suggested_response"`
	Generated         bool     `json:"-"`
}

// Keywords holds the ordered keyword lists that drive classification.
// Order within each list is a tie-break: the first substring match wins.
type Keywords struct {
	Productive   []string `yaml:"productive"`
	Unproductive []string `yaml:"unproductive"`
}
