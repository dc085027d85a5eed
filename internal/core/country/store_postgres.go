package country

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pokereview/pokereview/internal/core/owner"
	"github.com/pokereview/pokereview/internal/platform/database/schema"
	"github.com/pokereview/pokereview/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCountries(context context.Context) ([]*Country, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Country.ID, schema.Country.Name, schema.Country.CreatedAt, schema.Country.UpdatedAt,
		schema.Country.Table, schema.Country.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_countries")
	}
	defer rows.Close()

	var result []*Country
	for rows.Next() {
		c := &Country{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_country")
		}
		result = append(result, c)
	}

	return result, rows.Err()
}

func (repository *PostgresRepository) GetCountry(context context.Context, id int) (*Country, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Country.ID, schema.Country.Name, schema.Country.CreatedAt, schema.Country.UpdatedAt,
		schema.Country.Table, schema.Country.ID,
	)
	c := &Country{}

	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_country")
	}

	return c, nil
}

func (repository *PostgresRepository) CountryExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Country.Table, schema.Country.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "country_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateCountry(context context.Context, c *Country) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Country.Table, schema.Country.Name, schema.Country.CreatedAt, schema.Country.UpdatedAt,
		schema.Country.ID, schema.Country.CreatedAt, schema.Country.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.Name).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_country")
}

func (repository *PostgresRepository) UpdateCountry(context context.Context, c *Country) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Country.Table, schema.Country.Name, schema.Country.UpdatedAt,
		schema.Country.ID, schema.Country.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.Name).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_country")
}

func (repository *PostgresRepository) DeleteCountry(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Country.Table, schema.Country.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_country")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListOwnersOfCountry(context context.Context, countryID int) ([]*owner.Owner, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.Owner.ID, schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.CountryID, schema.Owner.CreatedAt, schema.Owner.UpdatedAt,
		schema.Owner.Table,
		schema.Owner.CountryID,
		schema.Owner.ID,
	)

	rows, err := repository.db.Query(context, query, countryID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_owners_of_country")
	}
	defer rows.Close()

	var result []*owner.Owner
	for rows.Next() {
		o := &owner.Owner{}
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.CountryID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_owner")
		}
		result = append(result, o)
	}

	return result, rows.Err()
}

func (repository *PostgresRepository) GetCountryOfOwner(context context.Context, ownerID int) (*Country, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s
		FROM %s c
		JOIN %s o ON o.%s = c.%s
		WHERE o.%s = $1
	`,
		schema.Country.ID, schema.Country.Name, schema.Country.CreatedAt, schema.Country.UpdatedAt,
		schema.Country.Table,
		schema.Owner.Table, schema.Owner.CountryID, schema.Country.ID,
		schema.Owner.ID,
	)
	c := &Country{}

	err := repository.db.QueryRow(context, query, ownerID).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_country_of_owner")
	}

	return c, nil
}
