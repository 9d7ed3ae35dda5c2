package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCliente Role = "CLIENTE"
)

// Usuario representa uma credencial de acesso.
// Um usuário ADMIN não possui cliente vinculado; um usuário CLIENTE
// está vinculado a exatamente um cliente, e um cliente possui no
// máximo uma conta de usuário.
type Usuario struct {
	ID        int64
	Email     string
	SenhaHash string
	Role      Role
	ClienteID *int64
}

// IsAdmin verifica se o usuário é admin
func (u *Usuario) IsAdmin() bool {
	return u.Role == RoleAdmin
}
