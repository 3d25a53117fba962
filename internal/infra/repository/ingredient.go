package repository

import (
	"context"
	"errors"

	"chatorder/internal/domain/ingredient"
	"chatorder/internal/infra"
	"chatorder/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IngredientRepository is both the write repository for ingredient commands
// and the read store for ingredient queries; the table is small enough that
// splitting the two sides buys nothing.
type IngredientRepository struct {
	pool *pgxpool.Pool
}

func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

const uniqueViolation = "23505"

func (r *IngredientRepository) Create(ctx context.Context, ing *ingredient.Ingredient) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ingredients (id, name, quantity, unit, shelf_life_days, ingredient_type, ingredient_sub_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ing.ID, ing.Name, ing.Quantity, ing.Unit, ing.ShelfLifeDays, ing.Type, ing.SubType, ing.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return infra.WrapRepoErr("ingredient name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert ingredient", err)
	}
	return nil
}

func (r *IngredientRepository) Update(ctx context.Context, ing *ingredient.Ingredient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ingredients
		SET quantity = $2, unit = $3, shelf_life_days = $4, ingredient_type = $5, ingredient_sub_type = $6
		WHERE name = $1`,
		ing.Name, ing.Quantity, ing.Unit, ing.ShelfLifeDays, ing.Type, ing.SubType,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update ingredient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ingredient not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IngredientRepository) UpdateQuantity(ctx context.Context, name string, quantity int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE ingredients SET quantity = $2 WHERE name = $1`, name, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to update ingredient quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ingredient not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IngredientRepository) UpdateShelfLife(ctx context.Context, name string, days int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE ingredients SET shelf_life_days = $2 WHERE name = $1`, name, days)
	if err != nil {
		return infra.WrapRepoErr("failed to update ingredient shelf life", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ingredient not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IngredientRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ingredients WHERE name = $1`, name)
	if err != nil {
		return infra.WrapRepoErr("failed to delete ingredient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ingredient not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IngredientRepository) List(ctx context.Context) ([]queries.IngredientView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, quantity, unit, shelf_life_days, ingredient_type, ingredient_sub_type, created_at
		FROM ingredients
		ORDER BY name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ingredients", err)
	}
	defer rows.Close()

	var views []queries.IngredientView
	for rows.Next() {
		var v queries.IngredientView
		if err := rows.Scan(&v.ID, &v.Name, &v.Quantity, &v.Unit, &v.ShelfLifeDays, &v.Type, &v.SubType, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ingredient row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ingredient rows", err)
	}
	return views, nil
}

func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*queries.IngredientView, error) {
	var v queries.IngredientView
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, quantity, unit, shelf_life_days, ingredient_type, ingredient_sub_type, created_at
		FROM ingredients
		WHERE name = $1`, name,
	).Scan(&v.ID, &v.Name, &v.Quantity, &v.Unit, &v.ShelfLifeDays, &v.Type, &v.SubType, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("ingredient not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ingredient by name", err)
	}
	return &v, nil
}
