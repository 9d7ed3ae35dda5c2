package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/errors"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/repositories"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/infrastructure/logging"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/infrastructure/persistence/postgres"
)

// ambienteDeTeste monta os serviços sobre um sqlite em memória
type ambienteDeTeste struct {
	clienteService *ClienteService
	autenticacao   *AutenticacaoService
	clienteRepo    repositories.ClienteRepository
	usuarioRepo    repositories.UsuarioRepository
}

func novoAmbienteDeTeste(t *testing.T) *ambienteDeTeste {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	clienteRepo := postgres.NewClienteRepository(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	uow := postgres.NewUnitOfWork(db)
	logger := logging.NewSlogLogger("error")
	tokenService := NewTokenService("segredo-de-teste", time.Hour)

	return &ambienteDeTeste{
		clienteService: NewClienteService(clienteRepo, usuarioRepo, uow, logger),
		autenticacao:   NewAutenticacaoService(usuarioRepo, clienteRepo, tokenService, uow, logger),
		clienteRepo:    clienteRepo,
		usuarioRepo:    usuarioRepo,
	}
}

func inputDeCliente(nome, cpf, email string) ClienteInput {
	return ClienteInput{
		Nome:           nome,
		CPF:            cpf,
		Email:          email,
		Telefone:       "85999990000",
		DataNascimento: time.Date(1992, 4, 3, 0, 0, 0, 0, time.UTC),
		Endereco: EnderecoInput{
			CEP:        "60111-222",
			Logradouro: "Rua das Flores",
			Numero:     100,
			Bairro:     "Centro",
			Cidade:     "Fortaleza",
			Estado:     "CE",
		},
	}
}

func TestClienteServiceAdicionar(t *testing.T) {
	ctx := context.Background()

	t.Run("normaliza cpf e cep antes de persistir", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		cliente, err := env.clienteService.Adicionar(ctx, inputDeCliente("Joao Pereira", "111.222.333-44", "joao@example.com"))
		require.NoError(t, err)
		require.NotZero(t, cliente.ID)
		assert.Equal(t, "11122233344", cliente.CPF)
		assert.Equal(t, "60111222", cliente.Endereco.CEP)
		assert.False(t, cliente.DataCadastro.IsZero())

		persistido, err := env.clienteRepo.FindByID(ctx, cliente.ID)
		require.NoError(t, err)
		require.NotNil(t, persistido)
		assert.Equal(t, "11122233344", persistido.CPF)
		assert.Equal(t, "60111222", persistido.Endereco.CEP)
	})

	t.Run("cpf com menos de 11 digitos falha sem persistir", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		_, err := env.clienteService.Adicionar(ctx, inputDeCliente("Joao Pereira", "123", "joao@example.com"))
		require.Error(t, err)
		assert.True(t, errors.IsBusinessRule(err))
		assert.Contains(t, err.Error(), "CPF inválido")

		_, total, err := env.clienteRepo.FindAll(ctx, repositories.Pagination{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("cep mal formado falha sem persistir", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		input := inputDeCliente("Joao Pereira", "11122233344", "joao@example.com")
		input.Endereco.CEP = "601-11"
		_, err := env.clienteService.Adicionar(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.IsBusinessRule(err))
		assert.Contains(t, err.Error(), "CEP inválido")

		_, total, err := env.clienteRepo.FindAll(ctx, repositories.Pagination{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("cpf duplicado falha e nao persiste segundo registro", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		_, err := env.clienteService.Adicionar(ctx, inputDeCliente("Primeiro", "11122233344", "primeiro@example.com"))
		require.NoError(t, err)

		// mesmo CPF com máscara diferente
		_, err = env.clienteService.Adicionar(ctx, inputDeCliente("Segundo", "111.222.333-44", "segundo@example.com"))
		require.Error(t, err)
		assert.True(t, errors.IsBusinessRule(err))
		assert.Equal(t, "CPF já cadastrado no sistema.", err.Error())

		_, total, err := env.clienteRepo.FindAll(ctx, repositories.Pagination{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("email duplicado falha", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		_, err := env.clienteService.Adicionar(ctx, inputDeCliente("Primeiro", "11122233344", "mesmo@example.com"))
		require.NoError(t, err)

		_, err = env.clienteService.Adicionar(ctx, inputDeCliente("Segundo", "55566677788", "mesmo@example.com"))
		require.Error(t, err)
		assert.Equal(t, "E-mail já cadastrado no sistema.", err.Error())
	})
}

func TestClienteServiceAtualizar(t *testing.T) {
	ctx := context.Background()

	t.Run("atualiza campos mantendo data de cadastro", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		criado, err := env.clienteService.Adicionar(ctx, inputDeCliente("Joao Pereira", "11122233344", "joao@example.com"))
		require.NoError(t, err)

		input := inputDeCliente("Joao Atualizado", "111.222.333-44", "joao@example.com")
		input.Endereco.Cidade = "Sobral"
		atualizado, err := env.clienteService.Atualizar(ctx, criado.ID, input)
		require.NoError(t, err)

		assert.Equal(t, "Joao Atualizado", atualizado.Nome)
		assert.Equal(t, "Sobral", atualizado.Endereco.Cidade)
		assert.Equal(t, criado.DataCadastro.Unix(), atualizado.DataCadastro.Unix())
	})

	t.Run("duplicidade exclui o proprio registro", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		criado, err := env.clienteService.Adicionar(ctx, inputDeCliente("Joao Pereira", "11122233344", "joao@example.com"))
		require.NoError(t, err)

		// mesmo CPF e e-mail do próprio registro não é conflito
		_, err = env.clienteService.Atualizar(ctx, criado.ID, inputDeCliente("Joao Pereira", "11122233344", "joao@example.com"))
		require.NoError(t, err)
	})

	t.Run("conflito com outro registro falha", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		_, err := env.clienteService.Adicionar(ctx, inputDeCliente("Primeiro", "11122233344", "primeiro@example.com"))
		require.NoError(t, err)
		segundo, err := env.clienteService.Adicionar(ctx, inputDeCliente("Segundo", "55566677788", "segundo@example.com"))
		require.NoError(t, err)

		_, err = env.clienteService.Atualizar(ctx, segundo.ID, inputDeCliente("Segundo", "11122233344", "segundo@example.com"))
		require.Error(t, err)
		assert.Equal(t, "CPF já cadastrado no sistema.", err.Error())
	})

	t.Run("id inexistente retorna not found", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		_, err := env.clienteService.Atualizar(ctx, 99, inputDeCliente("Joao", "11122233344", "joao@example.com"))
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Contains(t, err.Error(), "Id: 99")
	})
}

func TestClienteServiceBuscarPorID(t *testing.T) {
	ctx := context.Background()
	env := novoAmbienteDeTeste(t)

	criado, err := env.clienteService.Adicionar(ctx, inputDeCliente("Joao Pereira", "11122233344", "joao@example.com"))
	require.NoError(t, err)

	encontrado, err := env.clienteService.BuscarPorID(ctx, criado.ID)
	require.NoError(t, err)
	assert.Equal(t, criado.ID, encontrado.ID)

	_, err = env.clienteService.BuscarPorID(ctx, 12345)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "Recurso não encontrado. Id: 12345", err.Error())
}

func TestClienteServiceBuscarPorFiltros(t *testing.T) {
	ctx := context.Background()
	env := novoAmbienteDeTeste(t)
	pagina := repositories.Pagination{Page: 0, Size: 20}

	_, err := env.clienteService.Adicionar(ctx, inputDeCliente("Ana Silva", "11111111111", "ana@example.com"))
	require.NoError(t, err)
	_, err = env.clienteService.Adicionar(ctx, inputDeCliente("Bruno Santos", "22222222222", "bruno@example.com"))
	require.NoError(t, err)

	t.Run("cpf e cep com mascara sao normalizados na busca", func(t *testing.T) {
		clientes, total, err := env.clienteService.BuscarPorFiltros(ctx, repositories.ClienteFilters{
			CPF: "111.111.111-11",
			CEP: "60111-222",
		}, pagina)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, clientes, 1)
		assert.Equal(t, "Ana Silva", clientes[0].Nome)
	})

	t.Run("sem filtros retorna o mesmo que listar todos", func(t *testing.T) {
		todos, totalTodos, err := env.clienteService.ListarTodos(ctx, pagina)
		require.NoError(t, err)

		filtrados, totalFiltrados, err := env.clienteService.BuscarPorFiltros(ctx, repositories.ClienteFilters{}, pagina)
		require.NoError(t, err)

		assert.Equal(t, totalTodos, totalFiltrados)
		require.Equal(t, len(todos), len(filtrados))
		for i := range todos {
			assert.Equal(t, todos[i].ID, filtrados[i].ID)
		}
	})

	t.Run("filtros so com espacos retornam o mesmo que listar todos", func(t *testing.T) {
		_, totalTodos, err := env.clienteService.ListarTodos(ctx, pagina)
		require.NoError(t, err)

		_, totalFiltrados, err := env.clienteService.BuscarPorFiltros(ctx, repositories.ClienteFilters{
			Nome: "   ",
			CPF:  "  ",
			CEP:  " ",
		}, pagina)
		require.NoError(t, err)

		assert.Equal(t, totalTodos, totalFiltrados)
	})

	t.Run("cpf so com mascara nao corresponde a nada", func(t *testing.T) {
		clientes, total, err := env.clienteService.BuscarPorFiltros(ctx, repositories.ClienteFilters{CPF: ".."}, pagina)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, clientes)
	})

	t.Run("cep so com mascara nao corresponde a nada", func(t *testing.T) {
		clientes, total, err := env.clienteService.BuscarPorFiltros(ctx, repositories.ClienteFilters{CEP: "-"}, pagina)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, clientes)
	})
}

func TestClienteServiceRemover(t *testing.T) {
	ctx := context.Background()

	t.Run("remove a conta vinculada antes do cliente", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		criado, err := env.clienteService.Adicionar(ctx, inputDeCliente("Joao Pereira", "11122233344", "joao@example.com"))
		require.NoError(t, err)

		_, err = env.autenticacao.RegistrarUsuarioCliente(ctx, "joao@example.com", "senha-secreta")
		require.NoError(t, err)

		require.NoError(t, env.clienteService.Remover(ctx, criado.ID))

		restante, err := env.clienteRepo.FindByID(ctx, criado.ID)
		require.NoError(t, err)
		assert.Nil(t, restante)

		conta, err := env.usuarioRepo.FindByEmail(ctx, "joao@example.com")
		require.NoError(t, err)
		assert.Nil(t, conta)
	})

	t.Run("id inexistente retorna not found", func(t *testing.T) {
		env := novoAmbienteDeTeste(t)

		err := env.clienteService.Remover(ctx, 77)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
