package postgres

// ClienteModel é o model GORM para clientes
type ClienteModel struct {
	ID             int64         `gorm:"primaryKey;autoIncrement"`
	Nome           string        `gorm:"type:varchar(100);not null"`
	CPF            string        `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null"`
	Email          string        `gorm:"type:varchar(255);not null"`
	Telefone       string        `gorm:"type:varchar(20);not null"`
	DataNascimento int64         `gorm:"not null"`
	DataCadastro   int64         `gorm:"not null;<-:create"` // imutável após a criação
	Endereco       EnderecoModel `gorm:"embedded"`
}

func (ClienteModel) TableName() string {
	return "clientes"
}

// EnderecoModel é o value object de endereço embutido em ClienteModel
type EnderecoModel struct {
	CEP         string `gorm:"column:cep;type:varchar(8);not null"`
	Logradouro  string `gorm:"type:varchar(255);not null"`
	Numero      int    `gorm:"not null"`
	Complemento string `gorm:"type:varchar(255)"`
	Bairro      string `gorm:"type:varchar(255);not null"`
	Cidade      string `gorm:"type:varchar(255);not null"`
	Estado      string `gorm:"type:varchar(2);not null"`
}

// UsuarioModel é o model GORM para usuários.
// O índice único em cliente_id garante no máximo uma conta por cliente
// (valores NULL não colidem entre si).
type UsuarioModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	SenhaHash string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(20);not null"`
	ClienteID *int64 `gorm:"column:cliente_id;uniqueIndex"`

	Cliente *ClienteModel `gorm:"foreignKey:ClienteID;constraint:OnUpdate:CASCADE"`
}

func (UsuarioModel) TableName() string {
	return "tb_usuarios"
}
