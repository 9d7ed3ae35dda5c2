package repositories

import (
	"context"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários
type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	FindByClienteID(ctx context.Context, clienteID int64) (*entities.Usuario, error)
	ExistsByClienteID(ctx context.Context, clienteID int64) (bool, error)
	Create(ctx context.Context, usuario *entities.Usuario) error
	DeleteByClienteID(ctx context.Context, clienteID int64) error
}
