package payload

import (
	"encoding/json"
	"surveyapp/internal/core"

	"github.com/jellydator/validation"
)

// AnswersRequest is a JSON array of {question, answer} objects. Entries are
// kept raw so a malformed entry reaches the domain instead of failing decoding.
type AnswersRequest []json.RawMessage

func (a AnswersRequest) Validate() error {
	return validation.Validate([]json.RawMessage(a), validation.NotNil)
}

// ToCoreAnswers converts each entry. Anything other than an object with string
// question and answer becomes a message with blank fields.
func (a AnswersRequest) ToCoreAnswers() []core.AnswerMessage {
	msgs := make([]core.AnswerMessage, 0, len(a))
	for _, raw := range a {
		var entry map[string]any
		if err := json.Unmarshal(raw, &entry); err != nil {
			msgs = append(msgs, core.AnswerMessage{})
			continue
		}

		question, _ := entry["question"].(string)
		answer, _ := entry["answer"].(string)
		msgs = append(msgs, core.AnswerMessage{Question: question, Answer: answer})
	}

	return msgs
}
