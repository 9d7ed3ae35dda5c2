package dto

import (
	errs "errors"
	"time"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/services"
)

// ErrDataNascimentoFutura indica data de nascimento que não está no passado
var ErrDataNascimentoFutura = errs.New("A data de nascimento deve ser uma data no passado")

// EnderecoRequest representa o endereço na requisição de cliente
type EnderecoRequest struct {
	CEP         string `json:"cep" binding:"required,min=8,max=9"`
	Logradouro  string `json:"logradouro" binding:"required"`
	Numero      *int   `json:"numero" binding:"required"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro" binding:"required"`
	Cidade      string `json:"cidade" binding:"required"`
	Estado      string `json:"estado" binding:"required,len=2"`
}

// ClienteRequest representa a requisição para criar ou atualizar um cliente
type ClienteRequest struct {
	Nome           string           `json:"nome" binding:"required,min=3,max=100"`
	CPF            string           `json:"cpf" binding:"required"`
	Email          string           `json:"email" binding:"required,email"`
	Telefone       string           `json:"telefone" binding:"required"`
	DataNascimento string           `json:"dataNascimento" binding:"required,datetime=2006-01-02"`
	Endereco       *EnderecoRequest `json:"endereco" binding:"required"`
}

// ParaInput converte a requisição no input do serviço, interpretando a data
// de nascimento e exigindo que ela esteja no passado
func (r *ClienteRequest) ParaInput() (services.ClienteInput, error) {
	nascimento, err := time.ParseInLocation("2006-01-02", r.DataNascimento, time.UTC)
	if err != nil {
		return services.ClienteInput{}, err
	}

	if !nascimento.Before(time.Now().UTC()) {
		return services.ClienteInput{}, ErrDataNascimentoFutura
	}

	return services.ClienteInput{
		Nome:           r.Nome,
		CPF:            r.CPF,
		Email:          r.Email,
		Telefone:       r.Telefone,
		DataNascimento: nascimento,
		Endereco: services.EnderecoInput{
			CEP:         r.Endereco.CEP,
			Logradouro:  r.Endereco.Logradouro,
			Numero:      *r.Endereco.Numero,
			Complemento: r.Endereco.Complemento,
			Bairro:      r.Endereco.Bairro,
			Cidade:      r.Endereco.Cidade,
			Estado:      r.Endereco.Estado,
		},
	}, nil
}

// EnderecoResponse representa o endereço na resposta de cliente
type EnderecoResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      int    `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

// ClienteResponse representa a resposta de um cliente. A idade é derivada
// da data de nascimento no momento da leitura, nunca armazenada.
type ClienteResponse struct {
	ID             int64            `json:"id"`
	Nome           string           `json:"nome"`
	CPF            string           `json:"cpf"`
	Email          string           `json:"email"`
	Telefone       string           `json:"telefone"`
	DataNascimento string           `json:"dataNascimento"`
	Idade          int              `json:"idade"`
	DataCadastro   time.Time        `json:"dataCadastro"`
	Endereco       EnderecoResponse `json:"endereco"`
}

// ToClienteResponse converte a entidade Cliente para ClienteResponse,
// calculando a idade na data de referência
func ToClienteResponse(cliente *entities.Cliente, referencia time.Time) ClienteResponse {
	return ClienteResponse{
		ID:             cliente.ID,
		Nome:           cliente.Nome,
		CPF:            cliente.CPF,
		Email:          cliente.Email,
		Telefone:       cliente.Telefone,
		DataNascimento: cliente.DataNascimento.Format("2006-01-02"),
		Idade:          cliente.Idade(referencia),
		DataCadastro:   cliente.DataCadastro,
		Endereco: EnderecoResponse{
			CEP:         cliente.Endereco.CEP,
			Logradouro:  cliente.Endereco.Logradouro,
			Numero:      cliente.Endereco.Numero,
			Complemento: cliente.Endereco.Complemento,
			Bairro:      cliente.Endereco.Bairro,
			Cidade:      cliente.Endereco.Cidade,
			Estado:      cliente.Endereco.Estado,
		},
	}
}

// PageResponse é o envelope de paginação das listagens
type PageResponse struct {
	Content       []ClienteResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

// ToClientePage monta o envelope de página a partir das entidades
func ToClientePage(clientes []*entities.Cliente, page, size int, total int64) PageResponse {
	referencia := time.Now().UTC()

	content := make([]ClienteResponse, len(clientes))
	for i, cliente := range clientes {
		content[i] = ToClienteResponse(cliente, referencia)
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return PageResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
