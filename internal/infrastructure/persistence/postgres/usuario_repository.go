package postgres

import (
	"context"
	errs "errors"

	"gorm.io/gorm"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/entities"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/errors"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/domain/repositories"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := dbDoContexto(ctx, r.db)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UsuarioRepository) FindByClienteID(ctx context.Context, clienteID int64) (*entities.Usuario, error) {
	var model UsuarioModel

	db := dbDoContexto(ctx, r.db)
	if err := db.Where("cliente_id = ?", clienteID).First(&model).Error; err != nil {
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UsuarioRepository) ExistsByClienteID(ctx context.Context, clienteID int64) (bool, error) {
	var count int64

	db := dbDoContexto(ctx, r.db)
	if err := db.Model(&UsuarioModel{}).Where("cliente_id = ?", clienteID).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	db := dbDoContexto(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errs.Is(err, gorm.ErrDuplicatedKey) {
			return errors.NewBusinessRule("E-mail já cadastrado no sistema.")
		}
		return err
	}

	usuario.ID = model.ID
	return nil
}

func (r *UsuarioRepository) DeleteByClienteID(ctx context.Context, clienteID int64) error {
	db := dbDoContexto(ctx, r.db)
	return db.Where("cliente_id = ?", clienteID).Delete(&UsuarioModel{}).Error
}

// Conversores
func (r *UsuarioRepository) toModel(usuario *entities.Usuario) *UsuarioModel {
	return &UsuarioModel{
		ID:        usuario.ID,
		Email:     usuario.Email,
		SenhaHash: usuario.SenhaHash,
		Role:      string(usuario.Role),
		ClienteID: usuario.ClienteID,
	}
}

func (r *UsuarioRepository) toEntity(model *UsuarioModel) *entities.Usuario {
	return &entities.Usuario{
		ID:        model.ID,
		Email:     model.Email,
		SenhaHash: model.SenhaHash,
		Role:      entities.Role(model.Role),
		ClienteID: model.ClienteID,
	}
}
