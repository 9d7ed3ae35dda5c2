package security

import (
	"testing"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
)

func TestPodeAcessarCliente(t *testing.T) {
	clienteID := int64(42)

	admin := &Principal{UsuarioID: 1, Role: entities.RoleAdmin}
	clienteVinculado := &Principal{UsuarioID: 2, Role: entities.RoleCliente, ClienteID: &clienteID}
	clienteSemVinculo := &Principal{UsuarioID: 3, Role: entities.RoleCliente}

	casos := []struct {
		nome      string
		principal *Principal
		alvo      int64
		esperado  bool
	}{
		{"nao autenticado nega", nil, 42, false},
		{"admin acessa qualquer cliente", admin, 42, true},
		{"admin acessa outro cliente", admin, 7, true},
		{"cliente acessa o proprio registro", clienteVinculado, 42, true},
		{"cliente nao acessa outro registro", clienteVinculado, 7, false},
		{"cliente sem vinculo nega", clienteSemVinculo, 42, false},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			if obtido := PodeAcessarCliente(caso.principal, caso.alvo); obtido != caso.esperado {
				t.Errorf("esperava %v, obteve %v", caso.esperado, obtido)
			}
		})
	}
}

func TestNewPrincipal(t *testing.T) {
	clienteID := int64(10)
	usuario := &entities.Usuario{
		ID:        5,
		Email:     "cliente@example.com",
		SenhaHash: "hash",
		Role:      entities.RoleCliente,
		ClienteID: &clienteID,
	}

	principal := NewPrincipal(usuario)

	if principal.UsuarioID != usuario.ID {
		t.Errorf("esperava usuario id %d, obteve %d", usuario.ID, principal.UsuarioID)
	}
	if principal.Email != usuario.Email {
		t.Errorf("esperava email %q, obteve %q", usuario.Email, principal.Email)
	}
	if principal.Role != entities.RoleCliente {
		t.Errorf("esperava role CLIENTE, obteve %q", principal.Role)
	}
	if principal.ClienteID == nil || *principal.ClienteID != clienteID {
		t.Error("esperava cliente vinculado no principal")
	}
	if principal.IsAdmin() {
		t.Error("principal CLIENTE não deve ser admin")
	}
}
