package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pokereview/pokereview/internal/core/pokemon"
	"github.com/pokereview/pokereview/internal/platform/database/schema"
	"github.com/pokereview/pokereview/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Category.ID, schema.Category.Name, schema.Category.CreatedAt, schema.Category.UpdatedAt,
		schema.Category.Table, schema.Category.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (repository *PostgresRepository) GetCategory(context context.Context, id int) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Category.ID, schema.Category.Name, schema.Category.CreatedAt, schema.Category.UpdatedAt,
		schema.Category.Table, schema.Category.ID,
	)
	c := &Category{}

	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category")
	}

	return c, nil
}

func (repository *PostgresRepository) CategoryExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Category.Table, schema.Category.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "category_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Category.Table, schema.Category.Name, schema.Category.CreatedAt, schema.Category.UpdatedAt,
		schema.Category.ID, schema.Category.CreatedAt, schema.Category.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.Name).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Category.Table, schema.Category.Name, schema.Category.UpdatedAt,
		schema.Category.ID, schema.Category.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.Name).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_category")
	}
	defer transaction.Rollback(context)

	// Junction rows first so they never reference a missing category.
	junctionQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.PokemonCategory.Table, schema.PokemonCategory.CategoryID,
	)
	if _, err := transaction.Exec(context, junctionQuery, id); err != nil {
		return dberr.Wrap(err, "delete_category_junctions")
	}

	rootQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Category.Table, schema.Category.ID,
	)
	cmd, err := transaction.Exec(context, rootQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(transaction.Commit(context), "commit_delete_category")
}

func (repository *PostgresRepository) ListPokemonByCategory(context context.Context, categoryID int) ([]*pokemon.Pokemon, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s
		FROM %s p
		JOIN %s pc ON pc.%s = p.%s
		WHERE pc.%s = $1
	`,
		schema.Pokemon.ID, schema.Pokemon.Name, schema.Pokemon.BirthDate, schema.Pokemon.CreatedAt, schema.Pokemon.UpdatedAt,
		schema.Pokemon.Table,
		schema.PokemonCategory.Table, schema.PokemonCategory.PokemonID, schema.Pokemon.ID,
		schema.PokemonCategory.CategoryID,
	)

	rows, err := repository.db.Query(context, query, categoryID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pokemon_by_category")
	}
	defer rows.Close()

	var result []*pokemon.Pokemon
	for rows.Next() {
		p := &pokemon.Pokemon{}
		if err := rows.Scan(&p.ID, &p.Name, &p.BirthDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_pokemon")
		}
		result = append(result, p)
	}

	return result, rows.Err()
}
