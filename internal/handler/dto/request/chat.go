package request

type AppendTurnRequest struct {
	Message string `json:"message" binding:"required_without=Stop,max=4000"`
	// Stop overrides the message with the stop keyword and ends the dialogue.
	Stop bool `json:"stop"`
}
