package dto

// LoginRequest credenciales escritas en la pantalla de inicio de sesión.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
