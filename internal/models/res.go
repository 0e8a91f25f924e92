package models

// ApiResponse is the envelope of every JSON answer. Error carries the
// user facing failure description and Message the status shown on success.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SettingsPrompt tells the client to offer a shortcut to the system
// settings screen.
type SettingsPrompt struct {
	OpenSettings bool   `json:"open_settings"`
	Status       string `json:"status"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

// LocationPromptResponse is the failure answered when location access was
// denied or restricted.
func LocationPromptResponse(status LocationAuthorization) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: LocationDeniedTitle,
		Error:   LocationDeniedMessage,
		Data: SettingsPrompt{
			OpenSettings: status.NeedsSettingsPrompt(),
			Status:       status.String(),
		},
	}
}
