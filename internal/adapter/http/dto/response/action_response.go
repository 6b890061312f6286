package response

// ActionResponse is the envelope every mutation answers with.
type ActionResponse struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success() ActionResponse {
	return ActionResponse{Type: "success"}
}

func SuccessMessage(message string) ActionResponse {
	return ActionResponse{Type: "success", Message: message}
}

func SuccessData(data interface{}) ActionResponse {
	return ActionResponse{Type: "success", Data: data}
}
