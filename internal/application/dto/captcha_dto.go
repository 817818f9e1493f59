package dto

// VerifyCaptchaRequest entrée de /recaptcha/verify.
type VerifyCaptchaRequest struct {
	Token string `json:"token"`
}

// VerifyCaptchaResponse résultat de la vérification côté Google.
type VerifyCaptchaResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score"`
	Action     string   `json:"action,omitempty"`
	Error      string   `json:"error,omitempty"`
	ErrorCodes []string `json:"errorCodes,omitempty"`
}
