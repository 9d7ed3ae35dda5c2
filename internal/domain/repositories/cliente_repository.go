package repositories

import (
	"context"
	"time"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
)

// Pagination contém os parâmetros de paginação de uma listagem
type Pagination struct {
	Page int // página (começa em 0)
	Size int // itens por página (default: 20, max: 100)
}

// Offset calcula o deslocamento da página
func (p Pagination) Offset() int {
	return p.Page * p.Size
}

// ClienteFilters contém os filtros opcionais da busca de clientes.
// Campo vazio significa "filtro não aplicado", nunca "não casa com nada".
type ClienteFilters struct {
	Nome           string
	CPF            string
	Email          string
	Telefone       string
	DataNascimento *time.Time
	CEP            string
	Logradouro     string
	Cidade         string
	Estado         string
}

// ClienteRepository define a interface para persistência de clientes.
// Métodos de busca por identificador retornam (nil, nil) quando o
// registro não existe.
type ClienteRepository interface {
	FindAll(ctx context.Context, page Pagination) ([]*entities.Cliente, int64, error)
	FindByFilters(ctx context.Context, filters ClienteFilters, page Pagination) ([]*entities.Cliente, int64, error)
	FindByID(ctx context.Context, id int64) (*entities.Cliente, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.Cliente, error)
	FindByEmail(ctx context.Context, email string) (*entities.Cliente, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, cliente *entities.Cliente) error
	Update(ctx context.Context, cliente *entities.Cliente) error
	Delete(ctx context.Context, id int64) error
}
