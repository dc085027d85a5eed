package pokemon

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pokereview/pokereview/internal/platform/database/schema"
	"github.com/pokereview/pokereview/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListPokemon(context context.Context) ([]*Pokemon, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Pokemon.ID, schema.Pokemon.Name, schema.Pokemon.BirthDate, schema.Pokemon.CreatedAt, schema.Pokemon.UpdatedAt,
		schema.Pokemon.Table, schema.Pokemon.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pokemon")
	}
	defer rows.Close()

	var result []*Pokemon
	for rows.Next() {
		p := &Pokemon{}
		if err := rows.Scan(&p.ID, &p.Name, &p.BirthDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_pokemon")
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (repository *PostgresRepository) GetPokemon(context context.Context, id int) (*Pokemon, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Pokemon.ID, schema.Pokemon.Name, schema.Pokemon.BirthDate, schema.Pokemon.CreatedAt, schema.Pokemon.UpdatedAt,
		schema.Pokemon.Table, schema.Pokemon.ID,
	)
	p := &Pokemon{}

	err := repository.db.QueryRow(context, query, id).Scan(&p.ID, &p.Name, &p.BirthDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_pokemon")
	}

	return p, nil
}

func (repository *PostgresRepository) PokemonExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Pokemon.Table, schema.Pokemon.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "pokemon_exists")
	}
	return exists, nil
}

// CreatePokemon runs the insert of the pokemon row and both junction rows
// inside one transaction so that no pokemon-without-association state can be
// observed, even across concurrent readers.
func (repository *PostgresRepository) CreatePokemon(context context.Context, ownerID, categoryID int, p *Pokemon) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_pokemon")
	}
	defer transaction.Rollback(context)

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Pokemon.Table, schema.Pokemon.Name, schema.Pokemon.BirthDate, schema.Pokemon.CreatedAt, schema.Pokemon.UpdatedAt,
		schema.Pokemon.ID, schema.Pokemon.CreatedAt, schema.Pokemon.UpdatedAt,
	)
	if err := transaction.QueryRow(context, insertQuery, p.Name, p.BirthDate).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_pokemon")
	}

	ownerJunction := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.PokemonOwner.Table, schema.PokemonOwner.PokemonID, schema.PokemonOwner.OwnerID,
	)
	if _, err := transaction.Exec(context, ownerJunction, p.ID, ownerID); err != nil {
		return dberr.Wrap(err, "create_pokemon_owner")
	}

	categoryJunction := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.PokemonCategory.Table, schema.PokemonCategory.PokemonID, schema.PokemonCategory.CategoryID,
	)
	if _, err := transaction.Exec(context, categoryJunction, p.ID, categoryID); err != nil {
		return dberr.Wrap(err, "create_pokemon_category")
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_pokemon")
}

func (repository *PostgresRepository) UpdatePokemon(context context.Context, p *Pokemon) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Pokemon.Table, schema.Pokemon.Name, schema.Pokemon.BirthDate, schema.Pokemon.UpdatedAt,
		schema.Pokemon.ID, schema.Pokemon.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Name, p.BirthDate).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_pokemon")
}

func (repository *PostgresRepository) DeletePokemon(context context.Context, id int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_pokemon")
	}
	defer transaction.Rollback(context)

	ownerJunction := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.PokemonOwner.Table, schema.PokemonOwner.PokemonID,
	)
	if _, err := transaction.Exec(context, ownerJunction, id); err != nil {
		return dberr.Wrap(err, "delete_pokemon_owner")
	}

	categoryJunction := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.PokemonCategory.Table, schema.PokemonCategory.PokemonID,
	)
	if _, err := transaction.Exec(context, categoryJunction, id); err != nil {
		return dberr.Wrap(err, "delete_pokemon_category")
	}

	rootQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Pokemon.Table, schema.Pokemon.ID,
	)
	cmd, err := transaction.Exec(context, rootQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_pokemon")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(transaction.Commit(context), "commit_delete_pokemon")
}
