package core

const (
	InputCheckbox = "checkbox"
	InputRadio    = "radio"
	InputText     = "text"
)

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

type Form struct {
	ID          string     `json:"id"`
	Author      string     `json:"author"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	Name            string   `json:"name"`
	TypeOfInput     string   `json:"type_of_input"`
	PossibleAnswers []string `json:"possible_answers"`
	Answers         []string `json:"answers"`
}

type Credentials struct {
	Username string
	Password string
}

type FormMessage struct {
	Author      string
	Name        string
	Description *string
}

type QuestionMessage struct {
	FormID          string
	Name            string
	TypeOfInput     string
	PossibleAnswers []string
}

type AnswerMessage struct {
	Question string
	Answer   string
}
