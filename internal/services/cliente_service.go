package services

import (
	"context"
	"strings"
	"time"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/errors"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/ports"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/repositories"
)

// ClienteService contém a lógica de negócio para clientes
type ClienteService struct {
	clienteRepo repositories.ClienteRepository
	usuarioRepo repositories.UsuarioRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewClienteService cria um novo ClienteService
func NewClienteService(
	clienteRepo repositories.ClienteRepository,
	usuarioRepo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ClienteService {
	return &ClienteService{
		clienteRepo: clienteRepo,
		usuarioRepo: usuarioRepo,
		uow:         uow,
		logger:      logger,
	}
}

// ClienteInput representa os dados para criar ou atualizar um cliente
type ClienteInput struct {
	Nome           string
	CPF            string
	Email          string
	Telefone       string
	DataNascimento time.Time
	Endereco       EnderecoInput
}

// EnderecoInput representa o endereço de um cliente
type EnderecoInput struct {
	CEP         string
	Logradouro  string
	Numero      int
	Complemento string
	Bairro      string
	Cidade      string
	Estado      string
}

// ListarTodos retorna a página de clientes sem filtros
func (s *ClienteService) ListarTodos(ctx context.Context, page repositories.Pagination) ([]*entities.Cliente, int64, error) {
	return s.clienteRepo.FindAll(ctx, page)
}

// BuscarPorFiltros retorna a página de clientes que satisfaz a conjunção dos
// filtros ativos. CPF e CEP são normalizados para dígitos antes da comparação;
// valor não-branco que não contém dígito algum não corresponde a cliente
// nenhum. Nenhum filtro ativo equivale a ListarTodos.
func (s *ClienteService) BuscarPorFiltros(ctx context.Context, filters repositories.ClienteFilters, page repositories.Pagination) ([]*entities.Cliente, int64, error) {
	if strings.TrimSpace(filters.CPF) != "" {
		filters.CPF = normalizarDigitos(filters.CPF)
		if filters.CPF == "" {
			return []*entities.Cliente{}, 0, nil
		}
	}
	if strings.TrimSpace(filters.CEP) != "" {
		filters.CEP = normalizarDigitos(filters.CEP)
		if filters.CEP == "" {
			return []*entities.Cliente{}, 0, nil
		}
	}

	return s.clienteRepo.FindByFilters(ctx, filters, page)
}

// BuscarPorID retorna o cliente pelo id
func (s *ClienteService) BuscarPorID(ctx context.Context, id int64) (*entities.Cliente, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, errors.NewNotFound(id)
	}

	return cliente, nil
}

// Adicionar cria um novo cliente, normalizando CPF e CEP e verificando
// duplicidade de CPF e e-mail dentro da mesma transação da escrita
func (s *ClienteService) Adicionar(ctx context.Context, input ClienteInput) (*entities.Cliente, error) {
	cliente, err := montarCliente(input)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.verificarDuplicidade(txCtx, cliente.CPF, cliente.Email, 0); err != nil {
			return err
		}

		cliente.DataCadastro = time.Now().UTC()
		return s.clienteRepo.Create(txCtx, cliente)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("cliente criado", "id", cliente.ID, "cpf", cliente.CPF)
	return cliente, nil
}

// Atualizar sobrescreve os campos mutáveis do cliente. A data de cadastro é
// imutável. A verificação de duplicidade exclui o próprio registro.
func (s *ClienteService) Atualizar(ctx context.Context, id int64, input ClienteInput) (*entities.Cliente, error) {
	novo, err := montarCliente(input)
	if err != nil {
		return nil, err
	}

	var atualizado *entities.Cliente
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existente, err := s.clienteRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existente == nil {
			return errors.NewNotFound(id)
		}

		if err := s.verificarDuplicidade(txCtx, novo.CPF, novo.Email, id); err != nil {
			return err
		}

		novo.ID = existente.ID
		novo.DataCadastro = existente.DataCadastro
		if err := s.clienteRepo.Update(txCtx, novo); err != nil {
			return err
		}

		atualizado = novo
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("cliente atualizado", "id", id)
	return atualizado, nil
}

// Remover exclui o cliente e, antes, a conta de usuário vinculada a ele,
// para satisfazer o vínculo um-para-um. Conflito de integridade referencial
// no armazenamento é reportado como violação de integridade, nunca como
// erro cru de banco.
func (s *ClienteService) Remover(ctx context.Context, id int64) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existe, err := s.clienteRepo.ExistsByID(txCtx, id)
		if err != nil {
			return err
		}
		if !existe {
			return errors.NewNotFound(id)
		}

		if err := s.usuarioRepo.DeleteByClienteID(txCtx, id); err != nil {
			return err
		}

		return s.clienteRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("cliente removido", "id", id)
	return nil
}

// montarCliente converte o input em entidade, normalizando CPF e CEP.
// CPF deve reduzir a exatamente 11 dígitos e CEP a exatamente 8.
func montarCliente(input ClienteInput) (*entities.Cliente, error) {
	cpf := normalizarDigitos(input.CPF)
	if len(cpf) != 11 {
		return nil, errors.NewBusinessRule("Formato de CPF inválido. Deve conter 11 dígitos.")
	}

	cep := normalizarDigitos(input.Endereco.CEP)
	if len(cep) != 8 {
		return nil, errors.NewBusinessRule("Formato de CEP inválido. Deve conter 8 dígitos.")
	}

	return &entities.Cliente{
		Nome:           input.Nome,
		CPF:            cpf,
		Email:          input.Email,
		Telefone:       input.Telefone,
		DataNascimento: input.DataNascimento,
		Endereco: entities.Endereco{
			CEP:         cep,
			Logradouro:  input.Endereco.Logradouro,
			Numero:      input.Endereco.Numero,
			Complemento: input.Endereco.Complemento,
			Bairro:      input.Endereco.Bairro,
			Cidade:      input.Endereco.Cidade,
			Estado:      input.Endereco.Estado,
		},
	}, nil
}

// verificarDuplicidade garante a unicidade de CPF e e-mail entre os clientes,
// excluindo o registro excetoID (0 para criação)
func (s *ClienteService) verificarDuplicidade(ctx context.Context, cpf, email string, excetoID int64) error {
	porCPF, err := s.clienteRepo.FindByCPF(ctx, cpf)
	if err != nil {
		return err
	}
	if porCPF != nil && porCPF.ID != excetoID {
		return errors.NewBusinessRule("CPF já cadastrado no sistema.")
	}

	porEmail, err := s.clienteRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if porEmail != nil && porEmail.ID != excetoID {
		return errors.NewBusinessRule("E-mail já cadastrado no sistema.")
	}

	return nil
}

// normalizarDigitos remove tudo que não for dígito
func normalizarDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
