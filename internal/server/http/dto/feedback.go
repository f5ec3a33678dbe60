package dto

// FeedbackResponse mirrors one customer review.
type FeedbackResponse struct {
	FirstName string `json:"f_name"`
	LastName  string `json:"l_name"`
	Email     string `json:"email"`
	Message   string `json:"order_feedback"`
	Score     int    `json:"feedback_score"`
}
