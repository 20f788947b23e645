package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// model is implemented by the pointer types in the models package.
type model[D any, M any] interface {
	*M
	ToDomain() *D
	FromDomain(*D)
	PrimaryKey() uint
}

// gormRepository implements the CRUD operations every entity repository shares.
// D is the domain entity, M its GORM model.
type gormRepository[D any, M any, P model[D, M]] struct {
	db     *gorm.DB
	logger logger.Logger
	entity string
	schema common.ListSchema
}

func newGormRepository[D any, M any, P model[D, M]](db *gorm.DB, logger logger.Logger, entity string, schema common.ListSchema) *gormRepository[D, M, P] {
	return &gormRepository[D, M, P]{
		db:     db,
		logger: logger,
		entity: entity,
		schema: schema,
	}
}

func (r *gormRepository[D, M, P]) Create(ctx context.Context, entity *D) error {
	m := P(new(M))
	m.FromDomain(entity)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.translate(fmt.Sprintf("failed to create %s", r.entity), err)
	}

	*entity = *m.ToDomain()
	r.logger.Info(fmt.Sprintf("Created %s with id ", r.entity), m.PrimaryKey())
	return nil
}

func (r *gormRepository[D, M, P]) List(ctx context.Context, query *common.ListQuery) ([]*D, error) {
	if query == nil {
		query = common.NewListQuery()
	}
	if err := query.Validate(r.schema); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(P(new(M)))

	// Filter columns come from the schema, never from the request.
	for name, value := range query.Filters {
		dbQuery = dbQuery.Where(fmt.Sprintf("%s = ?", r.schema.Filter[name]), value)
	}

	dbQuery = dbQuery.Order(query.OrderClause(r.schema))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []M
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch %s list: %w", r.entity, err)
	}

	domainList := make([]*D, len(modelList))
	for i := range modelList {
		domainList[i] = P(&modelList[i]).ToDomain()
	}
	return domainList, nil
}

func (r *gormRepository[D, M, P]) GetByID(ctx context.Context, id uint) (*D, error) {
	return r.first(ctx, "id = ?", id)
}

// first returns the first row matching the condition, or an error wrapping
// common.ErrNotFound.
func (r *gormRepository[D, M, P]) first(ctx context.Context, condition string, args ...interface{}) (*D, error) {
	m := P(new(M))
	if err := r.db.WithContext(ctx).Where(condition, args...).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %w", r.entity, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", r.entity, err)
	}
	return m.ToDomain(), nil
}

// Update writes every column of entity except created_at.
func (r *gormRepository[D, M, P]) Update(ctx context.Context, entity *D) error {
	m := P(new(M))
	m.FromDomain(entity)

	result := r.db.WithContext(ctx).Model(m).Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return r.translate(fmt.Sprintf("failed to update %s", r.entity), result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %w", r.entity, common.ErrNotFound)
	}

	*entity = *m.ToDomain()
	r.logger.Info(fmt.Sprintf("Updated %s with id ", r.entity), m.PrimaryKey())
	return nil
}

func (r *gormRepository[D, M, P]) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(P(new(M)), id)
	if result.Error != nil {
		return r.translate(fmt.Sprintf("failed to delete %s", r.entity), result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %w", r.entity, common.ErrNotFound)
	}

	r.logger.Info(fmt.Sprintf("Deleted %s with id ", r.entity), id)
	return nil
}

// translate maps constraint violations onto common.ErrConflict.
func (r *gormRepository[D, M, P]) translate(msg string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%s: %w", msg, common.ErrConflict)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
