package types

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitAssessmentRequest carries the ten question keys mapped to
// "A".."D".
type SubmitAssessmentRequest struct {
	Responses map[string]string `json:"responses"`
}

type CreateRoomRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Difficulty  string `json:"difficulty"`
	MaxMembers  int    `json:"maxMembers"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

// MotivationRequest feeds the personalized encouragement prompt; both
// fields fall back to neutral defaults when blank.
type MotivationRequest struct {
	StressLevel string `json:"stressLevel"`
	Progress    string `json:"progress"`
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Subject string `json:"subject"`
	Content string `json:"content"`
	URL     string `json:"url"`
}
