package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/errors"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/ports"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/repositories"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/security"
)

// AutenticacaoService contém a lógica de autenticação e de registro de contas
type AutenticacaoService struct {
	usuarioRepo  repositories.UsuarioRepository
	clienteRepo  repositories.ClienteRepository
	tokenService *TokenService
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewAutenticacaoService cria um novo AutenticacaoService
func NewAutenticacaoService(
	usuarioRepo repositories.UsuarioRepository,
	clienteRepo repositories.ClienteRepository,
	tokenService *TokenService,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AutenticacaoService {
	return &AutenticacaoService{
		usuarioRepo:  usuarioRepo,
		clienteRepo:  clienteRepo,
		tokenService: tokenService,
		uow:          uow,
		logger:       logger,
	}
}

// Login verifica as credenciais e emite o token JWT
func (s *AutenticacaoService) Login(ctx context.Context, email, senha string) (string, error) {
	usuario, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if usuario == nil {
		return "", errors.ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		return "", errors.ErrCredenciaisInvalidas
	}

	token, err := s.tokenService.GerarToken(usuario)
	if err != nil {
		return "", err
	}

	s.logger.Info("login efetuado", "email", email, "role", usuario.Role)
	return token, nil
}

// RegistrarUsuarioCliente cria uma conta CLIENTE vinculada a um cliente
// pré-existente, localizado pelo e-mail. Cada cliente possui no máximo
// uma conta.
func (s *AutenticacaoService) RegistrarUsuarioCliente(ctx context.Context, email, senha string) (*entities.Cliente, error) {
	senhaHash, err := hashSenha(senha)
	if err != nil {
		return nil, err
	}

	var cliente *entities.Cliente
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existente, err := s.clienteRepo.FindByEmail(txCtx, email)
		if err != nil {
			return err
		}
		if existente == nil {
			return errors.NewBusinessRule("Nenhum cliente cadastrado com este e-mail. Contate um administrador.")
		}

		possuiConta, err := s.usuarioRepo.ExistsByClienteID(txCtx, existente.ID)
		if err != nil {
			return err
		}
		if possuiConta {
			return errors.NewBusinessRule("Este cliente já possui uma conta de usuário registrada.")
		}

		clienteID := existente.ID
		novoUsuario := &entities.Usuario{
			Email:     existente.Email,
			SenhaHash: senhaHash,
			Role:      entities.RoleCliente,
			ClienteID: &clienteID,
		}
		if err := s.usuarioRepo.Create(txCtx, novoUsuario); err != nil {
			return err
		}

		cliente = existente
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("conta de cliente registrada", "email", email, "cliente_id", cliente.ID)
	return cliente, nil
}

// CriarAdmin cria uma conta ADMIN sem cliente vinculado. A autorização do
// chamador (somente um ADMIN existente) é aplicada na borda HTTP.
func (s *AutenticacaoService) CriarAdmin(ctx context.Context, email, senha string) error {
	senhaHash, err := hashSenha(senha)
	if err != nil {
		return err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existente, err := s.usuarioRepo.FindByEmail(txCtx, email)
		if err != nil {
			return err
		}
		if existente != nil {
			return errors.NewBusinessRule("E-mail já cadastrado no sistema.")
		}

		novoAdmin := &entities.Usuario{
			Email:     email,
			SenhaHash: senhaHash,
			Role:      entities.RoleAdmin,
			ClienteID: nil,
		}
		return s.usuarioRepo.Create(txCtx, novoAdmin)
	})
	if err != nil {
		return err
	}

	s.logger.Info("admin criado", "email", email)
	return nil
}

// CarregarPrincipal deriva o principal da conta identificada pelo e-mail
// (subject do token verificado)
func (s *AutenticacaoService) CarregarPrincipal(ctx context.Context, email string) (*security.Principal, error) {
	usuario, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrNaoAutenticado
	}

	return security.NewPrincipal(usuario), nil
}

// GarantirAdminPadrao cria o ADMIN inicial quando ele ainda não existe.
// Usado pelo seed de inicialização.
func (s *AutenticacaoService) GarantirAdminPadrao(ctx context.Context, email, senha string) error {
	existente, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existente != nil {
		s.logger.Debug("admin padrão já existe", "email", email)
		return nil
	}

	if err := s.CriarAdmin(ctx, email, senha); err != nil {
		return err
	}

	s.logger.Info("admin padrão criado", "email", email)
	return nil
}

func hashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
