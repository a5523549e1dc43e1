package models

// RegistrationData is the transient payload of POST /register. It must pass
// client-side validation before it is sent.
type RegistrationData struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirmPassword"`
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`
}

// ForgotPasswordData is the transient payload of POST /forgot-password. The
// user proves ownership by answering their security question and sets a new
// password in the same request.
type ForgotPasswordData struct {
	Username               string `json:"username"`
	SecurityQuestionValue  string `json:"securityQuestionValue"`
	SecurityQuestionAnswer string `json:"securityQuestionAnswer"`
	Password               string `json:"password"`
	ConfirmPassword        string `json:"confirmPassword"`
}
