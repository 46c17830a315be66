package dto

// UsuarioResponse never carries the password hash.
type UsuarioResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Nome        string  `json:"nome"`
	Sobrenome   string  `json:"sobrenome"`
	Whatsapp    string  `json:"whatsapp"`
	Setor       string  `json:"setor"`
	Papel       string  `json:"papel"`
	Ativo       bool    `json:"ativo"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
}

type CriarUsuarioRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Nome      string `json:"nome"      validate:"required"`
	Sobrenome string `json:"sobrenome"`
	Whatsapp  string `json:"whatsapp"`
	Setor     string `json:"setor"`
	Password  string `json:"password"  validate:"required,min=4"`
	Papel     string `json:"papel"     validate:"required,oneof=admin normal"`
}

// AtualizarUsuarioRequest applies partially: zero-valued fields are kept.
type AtualizarUsuarioRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Whatsapp  string `json:"whatsapp"`
	Setor     string `json:"setor"`
	Password  string `json:"password"  validate:"omitempty,min=4"`
	Papel     string `json:"papel"     validate:"omitempty,oneof=admin normal"`
}
