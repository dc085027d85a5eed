package reviewer

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

func (repository *PostgresRepository) ListReviewers(context context.Context) ([]*Reviewer, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Reviewer.ID, schema.Reviewer.FirstName, schema.Reviewer.LastName, schema.Reviewer.CreatedAt, schema.Reviewer.UpdatedAt,
		schema.Reviewer.Table, schema.Reviewer.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviewers")
	}
	defer rows.Close()

	var reviewers []*Reviewer
	for rows.Next() {
		r := &Reviewer{}
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_reviewer")
		}
		reviewers = append(reviewers, r)
	}

	return reviewers, rows.Err()
}

func (repository *PostgresRepository) GetReviewer(context context.Context, id int) (*Reviewer, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Reviewer.ID, schema.Reviewer.FirstName, schema.Reviewer.LastName, schema.Reviewer.CreatedAt, schema.Reviewer.UpdatedAt,
		schema.Reviewer.Table, schema.Reviewer.ID,
	)
	r := &Reviewer{}

	err := repository.db.QueryRow(context, query, id).Scan(&r.ID, &r.FirstName, &r.LastName, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_reviewer")
	}

	return r, nil
}

func (repository *PostgresRepository) ReviewerExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Reviewer.Table, schema.Reviewer.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "reviewer_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateReviewer(context context.Context, r *Reviewer) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Reviewer.Table, schema.Reviewer.FirstName, schema.Reviewer.LastName, schema.Reviewer.CreatedAt, schema.Reviewer.UpdatedAt,
		schema.Reviewer.ID, schema.Reviewer.CreatedAt, schema.Reviewer.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, r.FirstName, r.LastName).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	return dberr.Wrap(err, "create_reviewer")
}

func (repository *PostgresRepository) UpdateReviewer(context context.Context, r *Reviewer) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Reviewer.Table, schema.Reviewer.FirstName, schema.Reviewer.LastName, schema.Reviewer.UpdatedAt,
		schema.Reviewer.ID, schema.Reviewer.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, r.ID, r.FirstName, r.LastName).Scan(&r.UpdatedAt)
	return dberr.Wrap(err, "update_reviewer")
}

func (repository *PostgresRepository) ListReviewersOfPokemon(context context.Context, pokemonID int) ([]*Reviewer, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT r.%s, r.%s, r.%s, r.%s, r.%s
		FROM %s r
		JOIN %s rv ON rv.%s = r.%s
		WHERE rv.%s = $1
		ORDER BY r.%s ASC
	`,
		schema.Reviewer.ID, schema.Reviewer.FirstName, schema.Reviewer.LastName, schema.Reviewer.CreatedAt, schema.Reviewer.UpdatedAt,
		schema.Reviewer.Table,
		schema.Review.Table, schema.Review.ReviewerID, schema.Reviewer.ID,
		schema.Review.PokemonID,
		schema.Reviewer.ID,
	)

	rows, err := repository.db.Query(context, query, pokemonID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviewers_of_pokemon")
	}
	defer rows.Close()

	var reviewers []*Reviewer
	for rows.Next() {
		r := &Reviewer{}
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_reviewer")
		}
		reviewers = append(reviewers, r)
	}

	return reviewers, rows.Err()
}

func (repository *PostgresRepository) DeleteReviewer(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Reviewer.Table, schema.Reviewer.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_reviewer")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
