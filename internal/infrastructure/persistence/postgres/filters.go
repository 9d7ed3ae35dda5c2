package postgres

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/repositories"
)

// escopo é um predicado composável sobre a consulta de clientes
type escopo func(*gorm.DB) *gorm.DB

// comNome filtra por substring do nome, sem diferenciar maiúsculas
func comNome(nome string) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(nome)+"%")
	}
}

// comCPF filtra por igualdade exata do CPF já normalizado
func comCPF(cpf string) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("cpf = ?", cpf)
	}
}

// comEmail filtra por substring do e-mail, sem diferenciar maiúsculas
func comEmail(email string) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(email)+"%")
	}
}

// comTelefone filtra por igualdade exata do telefone
func comTelefone(telefone string) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("telefone = ?", telefone)
	}
}

// comDataNascimento filtra por igualdade exata da data de nascimento
func comDataNascimento(data time.Time) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("data_nascimento = ?", diaUnix(data))
	}
}

// comCEP filtra por igualdade exata do CEP já normalizado
func comCEP(cep string) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("cep = ?", cep)
	}
}

// comLogradouro filtra por substring do logradouro, sem diferenciar maiúsculas
func comLogradouro(logradouro string) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(logradouro) LIKE ?", "%"+strings.ToLower(logradouro)+"%")
	}
}

// comCidade filtra por substring da cidade, sem diferenciar maiúsculas
func comCidade(cidade string) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(cidade) LIKE ?", "%"+strings.ToLower(cidade)+"%")
	}
}

// comEstado filtra por igualdade do estado, sem diferenciar maiúsculas
func comEstado(estado string) escopo {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(estado) = ?", strings.ToLower(estado))
	}
}

// escoposParaFiltros compõe a conjunção dos filtros ativos, em ordem
// determinística. Campo em branco (vazio ou só espaços) não entra na
// composição: nenhum filtro ativo equivale a listar todos os clientes.
func escoposParaFiltros(f repositories.ClienteFilters) []escopo {
	var escopos []escopo

	if nome := strings.TrimSpace(f.Nome); nome != "" {
		escopos = append(escopos, comNome(nome))
	}
	if cpf := strings.TrimSpace(f.CPF); cpf != "" {
		escopos = append(escopos, comCPF(cpf))
	}
	if email := strings.TrimSpace(f.Email); email != "" {
		escopos = append(escopos, comEmail(email))
	}
	if telefone := strings.TrimSpace(f.Telefone); telefone != "" {
		escopos = append(escopos, comTelefone(telefone))
	}
	if f.DataNascimento != nil {
		escopos = append(escopos, comDataNascimento(*f.DataNascimento))
	}
	if cep := strings.TrimSpace(f.CEP); cep != "" {
		escopos = append(escopos, comCEP(cep))
	}
	if logradouro := strings.TrimSpace(f.Logradouro); logradouro != "" {
		escopos = append(escopos, comLogradouro(logradouro))
	}
	if cidade := strings.TrimSpace(f.Cidade); cidade != "" {
		escopos = append(escopos, comCidade(cidade))
	}
	if estado := strings.TrimSpace(f.Estado); estado != "" {
		escopos = append(escopos, comEstado(estado))
	}

	return escopos
}

// aplicarEscopos aplica os predicados em sequência sobre a consulta
func aplicarEscopos(db *gorm.DB, escopos []escopo) *gorm.DB {
	for _, e := range escopos {
		db = e(db)
	}
	return db
}
