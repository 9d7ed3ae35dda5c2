package postgres

import (
	"context"
	errs "errors"
	"time"

	"gorm.io/gorm"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/errors"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/repositories"
)

// ClienteRepository implementa repositories.ClienteRepository
type ClienteRepository struct {
	db *gorm.DB
}

// NewClienteRepository cria um novo ClienteRepository
func NewClienteRepository(db *gorm.DB) repositories.ClienteRepository {
	return &ClienteRepository{db: db}
}

func (r *ClienteRepository) FindAll(ctx context.Context, page repositories.Pagination) ([]*entities.Cliente, int64, error) {
	return r.buscarPaginado(ctx, nil, page)
}

func (r *ClienteRepository) FindByFilters(ctx context.Context, filters repositories.ClienteFilters, page repositories.Pagination) ([]*entities.Cliente, int64, error) {
	return r.buscarPaginado(ctx, escoposParaFiltros(filters), page)
}

func (r *ClienteRepository) buscarPaginado(ctx context.Context, escopos []escopo, page repositories.Pagination) ([]*entities.Cliente, int64, error) {
	db := dbDoContexto(ctx, r.db)

	query := aplicarEscopos(db.Model(&ClienteModel{}), escopos)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*ClienteModel
	if err := query.Order("id").Limit(page.Size).Offset(page.Offset()).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return r.toEntities(models), total, nil
}

func (r *ClienteRepository) FindByID(ctx context.Context, id int64) (*entities.Cliente, error) {
	var model ClienteModel

	db := dbDoContexto(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ClienteRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Cliente, error) {
	var model ClienteModel

	db := dbDoContexto(ctx, r.db)
	if err := db.Where("cpf = ?", cpf).First(&model).Error; err != nil {
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ClienteRepository) FindByEmail(ctx context.Context, email string) (*entities.Cliente, error) {
	var model ClienteModel

	db := dbDoContexto(ctx, r.db)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ClienteRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	db := dbDoContexto(ctx, r.db)
	if err := db.Model(&ClienteModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ClienteRepository) Create(ctx context.Context, cliente *entities.Cliente) error {
	model := r.toModel(cliente)

	db := dbDoContexto(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		// Duas criações concorrentes com o mesmo CPF podem passar pela
		// verificação de duplicidade; a constraint única decide e o erro
		// volta como a mesma regra de negócio
		if errs.Is(err, gorm.ErrDuplicatedKey) {
			return errors.NewBusinessRule("CPF já cadastrado no sistema.")
		}
		return err
	}

	cliente.ID = model.ID
	return nil
}

func (r *ClienteRepository) Update(ctx context.Context, cliente *entities.Cliente) error {
	model := r.toModel(cliente)

	db := dbDoContexto(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		if errs.Is(err, gorm.ErrDuplicatedKey) {
			return errors.NewBusinessRule("CPF já cadastrado no sistema.")
		}
		return err
	}

	return nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id int64) error {
	db := dbDoContexto(ctx, r.db)
	if err := db.Delete(&ClienteModel{}, id).Error; err != nil {
		if errs.Is(err, gorm.ErrForeignKeyViolated) {
			return errors.NewIntegrityViolation()
		}
		return err
	}

	return nil
}

// Conversores
func (r *ClienteRepository) toModel(cliente *entities.Cliente) *ClienteModel {
	return &ClienteModel{
		ID:             cliente.ID,
		Nome:           cliente.Nome,
		CPF:            cliente.CPF,
		Email:          cliente.Email,
		Telefone:       cliente.Telefone,
		DataNascimento: diaUnix(cliente.DataNascimento),
		DataCadastro:   cliente.DataCadastro.Unix(),
		Endereco: EnderecoModel{
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

func (r *ClienteRepository) toEntity(model *ClienteModel) *entities.Cliente {
	return &entities.Cliente{
		ID:             model.ID,
		Nome:           model.Nome,
		CPF:            model.CPF,
		Email:          model.Email,
		Telefone:       model.Telefone,
		DataNascimento: time.Unix(model.DataNascimento, 0).UTC(),
		DataCadastro:   time.Unix(model.DataCadastro, 0).UTC(),
		Endereco: entities.Endereco{
			CEP:         model.Endereco.CEP,
			Logradouro:  model.Endereco.Logradouro,
			Numero:      model.Endereco.Numero,
			Complemento: model.Endereco.Complemento,
			Bairro:      model.Endereco.Bairro,
			Cidade:      model.Endereco.Cidade,
			Estado:      model.Endereco.Estado,
		},
	}
}

func (r *ClienteRepository) toEntities(models []*ClienteModel) []*entities.Cliente {
	clientes := make([]*entities.Cliente, 0, len(models))
	for _, model := range models {
		clientes = append(clientes, r.toEntity(model))
	}
	return clientes
}

// diaUnix normaliza a data para meia-noite UTC antes de persistir/comparar
func diaUnix(t time.Time) int64 {
	dia := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return dia.Unix()
}
