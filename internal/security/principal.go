package security

import (
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
)

// Principal representa a identidade autenticada derivada de uma credencial
// verificada. É um tipo separado da entidade Usuario: carrega apenas o que
// a autorização precisa (role e cliente vinculado).
type Principal struct {
	UsuarioID int64
	Email     string
	Role      entities.Role
	ClienteID *int64
}

// NewPrincipal deriva um Principal a partir da entidade Usuario
func NewPrincipal(usuario *entities.Usuario) *Principal {
	return &Principal{
		UsuarioID: usuario.ID,
		Email:     usuario.Email,
		Role:      usuario.Role,
		ClienteID: usuario.ClienteID,
	}
}

// IsAdmin verifica se o principal possui o papel ADMIN
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == entities.RoleAdmin
}

// PodeAcessarCliente decide se o principal pode acessar o cliente informado:
// não autenticado nega; ADMIN acessa qualquer cliente; CLIENTE acessa apenas
// o próprio cliente vinculado.
func PodeAcessarCliente(p *Principal, clienteID int64) bool {
	if p == nil {
		return false
	}

	if p.Role == entities.RoleAdmin {
		return true
	}

	return p.ClienteID != nil && *p.ClienteID == clienteID
}
