package owner

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

func (repository *PostgresRepository) ListOwners(context context.Context) ([]*Owner, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Owner.ID, schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.CountryID, schema.Owner.CreatedAt, schema.Owner.UpdatedAt,
		schema.Owner.Table, schema.Owner.ID,
	)

	return repository.queryOwners(context, query)
}

func (repository *PostgresRepository) GetOwner(context context.Context, id int) (*Owner, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Owner.ID, schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.CountryID, schema.Owner.CreatedAt, schema.Owner.UpdatedAt,
		schema.Owner.Table, schema.Owner.ID,
	)
	o := &Owner{}

	err := repository.db.QueryRow(context, query, id).Scan(&o.ID, &o.FirstName, &o.LastName, &o.CountryID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_owner")
	}

	return o, nil
}

func (repository *PostgresRepository) OwnerExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Owner.Table, schema.Owner.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "owner_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateOwner(context context.Context, o *Owner) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Owner.Table, schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.CountryID, schema.Owner.CreatedAt, schema.Owner.UpdatedAt,
		schema.Owner.ID, schema.Owner.CreatedAt, schema.Owner.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, o.FirstName, o.LastName, o.CountryID).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return dberr.Wrap(err, "create_owner")
}

func (repository *PostgresRepository) UpdateOwner(context context.Context, o *Owner) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Owner.Table, schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.UpdatedAt,
		schema.Owner.ID, schema.Owner.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, o.ID, o.FirstName, o.LastName).Scan(&o.UpdatedAt)
	return dberr.Wrap(err, "update_owner")
}

// DeleteOwner removes the owner's pokemonowner rows in the same transaction
// as the owner row so no dangling association survives the delete.
func (repository *PostgresRepository) DeleteOwner(context context.Context, id int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_owner")
	}
	defer transaction.Rollback(context)

	junction := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.PokemonOwner.Table, schema.PokemonOwner.OwnerID,
	)
	if _, err := transaction.Exec(context, junction, id); err != nil {
		return dberr.Wrap(err, "delete_owner_pokemon")
	}

	rootQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Owner.Table, schema.Owner.ID,
	)
	cmd, err := transaction.Exec(context, rootQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_owner")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(transaction.Commit(context), "commit_delete_owner")
}

func (repository *PostgresRepository) ListPokemonByOwner(context context.Context, ownerID int) ([]*pokemon.Pokemon, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s
		FROM %s p
		JOIN %s po ON po.%s = p.%s
		WHERE po.%s = $1
		ORDER BY p.%s ASC
	`,
		schema.Pokemon.ID, schema.Pokemon.Name, schema.Pokemon.BirthDate, schema.Pokemon.CreatedAt, schema.Pokemon.UpdatedAt,
		schema.Pokemon.Table,
		schema.PokemonOwner.Table, schema.PokemonOwner.PokemonID, schema.Pokemon.ID,
		schema.PokemonOwner.OwnerID,
		schema.Pokemon.ID,
	)

	rows, err := repository.db.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pokemon_by_owner")
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

func (repository *PostgresRepository) ListOwnersOfPokemon(context context.Context, pokemonID int) ([]*Owner, error) {
	query := fmt.Sprintf(`
		SELECT o.%s, o.%s, o.%s, o.%s, o.%s, o.%s
		FROM %s o
		JOIN %s po ON po.%s = o.%s
		WHERE po.%s = $1
		ORDER BY o.%s ASC
	`,
		schema.Owner.ID, schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.CountryID, schema.Owner.CreatedAt, schema.Owner.UpdatedAt,
		schema.Owner.Table,
		schema.PokemonOwner.Table, schema.PokemonOwner.OwnerID, schema.Owner.ID,
		schema.PokemonOwner.PokemonID,
		schema.Owner.ID,
	)

	return repository.queryOwners(context, query, pokemonID)
}

func (repository *PostgresRepository) queryOwners(context context.Context, query string, args ...any) ([]*Owner, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_owners")
	}
	defer rows.Close()

	var result []*Owner
	for rows.Next() {
		o := &Owner{}
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.CountryID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_owner")
		}
		result = append(result, o)
	}

	return result, rows.Err()
}
