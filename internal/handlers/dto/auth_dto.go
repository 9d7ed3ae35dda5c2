package dto

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// TokenResponse carrega o token JWT emitido
type TokenResponse struct {
	Token string `json:"token"`
}

// RegistroUsuarioRequest representa o registro de conta para um cliente
// já cadastrado
type RegistroUsuarioRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6,max=72"`
}

// AdminCreationRequest representa a criação de uma conta ADMIN
type AdminCreationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6,max=72"`
}
