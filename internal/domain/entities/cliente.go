package entities

import "time"

// Cliente representa um cliente cadastrado no sistema
type Cliente struct {
	ID             int64
	Nome           string
	CPF            string // somente dígitos, 11 posições
	Email          string
	Telefone       string
	DataNascimento time.Time
	DataCadastro   time.Time // imutável, definido na criação
	Endereco       Endereco
}

// Endereco é um value object embutido no Cliente, sem identidade própria
type Endereco struct {
	CEP         string // somente dígitos, 8 posições
	Logradouro  string
	Numero      int
	Complemento string
	Bairro      string
	Cidade      string
	Estado      string
}

// Idade calcula a idade em anos completos na data de referência.
// Nunca é persistida: deve ser recalculada a cada leitura.
func (c *Cliente) Idade(referencia time.Time) int {
	anos := referencia.Year() - c.DataNascimento.Year()

	aniversario := time.Date(
		referencia.Year(),
		c.DataNascimento.Month(),
		c.DataNascimento.Day(),
		0, 0, 0, 0, referencia.Location(),
	)
	if referencia.Before(aniversario) {
		anos--
	}

	return anos
}
