package domain

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one line of a conversation transcript. Transcripts are
// ephemeral and append-only, oldest first.
type ChatMessage struct {
	ID     string `json:"id"`
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// ReplyKind classifies how the interpreter resolved an input line.
type ReplyKind string

const (
	ReplySecret  ReplyKind = "secret"
	ReplyTopic   ReplyKind = "topic"
	ReplyProject ReplyKind = "project"
	ReplyClear   ReplyKind = "clear"
	ReplyUnknown ReplyKind = "unknown"
)

// Reply is the interpreter's resolution of one input line. Secret is
// the matched secret key for ReplySecret; Project is the matched
// project title for ReplyProject. Clear replies instruct the caller to
// replace the whole transcript with Text rather than append.
type Reply struct {
	Text    string    `json:"text"`
	Kind    ReplyKind `json:"kind"`
	Secret  string    `json:"secret,omitempty"`
	Project string    `json:"project,omitempty"`
}
