package review

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

func (repository *PostgresRepository) ListReviews(context context.Context) ([]*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Review.ID, schema.Review.Title, schema.Review.Text, schema.Review.Rating,
		schema.Review.PokemonID, schema.Review.ReviewerID, schema.Review.CreatedAt, schema.Review.UpdatedAt,
		schema.Review.Table, schema.Review.ID,
	)

	return repository.queryReviews(context, query)
}

func (repository *PostgresRepository) GetReview(context context.Context, id int) (*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Review.ID, schema.Review.Title, schema.Review.Text, schema.Review.Rating,
		schema.Review.PokemonID, schema.Review.ReviewerID, schema.Review.CreatedAt, schema.Review.UpdatedAt,
		schema.Review.Table, schema.Review.ID,
	)
	r := &Review{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&r.ID, &r.Title, &r.Text, &r.Rating, &r.PokemonID, &r.ReviewerID, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_review")
	}

	return r, nil
}

func (repository *PostgresRepository) ReviewExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Review.Table, schema.Review.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "review_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateReview(context context.Context, r *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Review.Table, schema.Review.Title, schema.Review.Text, schema.Review.Rating,
		schema.Review.PokemonID, schema.Review.ReviewerID, schema.Review.CreatedAt, schema.Review.UpdatedAt,
		schema.Review.ID, schema.Review.CreatedAt, schema.Review.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		r.Title, r.Text, r.Rating, r.PokemonID, r.ReviewerID,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	return dberr.Wrap(err, "create_review")
}

func (repository *PostgresRepository) UpdateReview(context context.Context, r *Review) error {
	// The pokemonid/reviewerid columns are deliberately not in the SET list.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Review.Table, schema.Review.Title, schema.Review.Text, schema.Review.Rating, schema.Review.UpdatedAt,
		schema.Review.ID, schema.Review.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, r.ID, r.Title, r.Text, r.Rating).Scan(&r.UpdatedAt)
	return dberr.Wrap(err, "update_review")
}

func (repository *PostgresRepository) DeleteReview(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Review.Table, schema.Review.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteReviews(context context.Context, reviews []*Review) error {
	if len(reviews) == 0 {
		return nil
	}

	ids := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ID)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ANY($1)`,
		schema.Review.Table, schema.Review.ID,
	)

	_, err := repository.db.Exec(context, query, ids)
	return dberr.Wrap(err, "delete_reviews")
}

func (repository *PostgresRepository) ListReviewsOfPokemon(context context.Context, pokemonID int) ([]*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Review.ID, schema.Review.Title, schema.Review.Text, schema.Review.Rating,
		schema.Review.PokemonID, schema.Review.ReviewerID, schema.Review.CreatedAt, schema.Review.UpdatedAt,
		schema.Review.Table, schema.Review.PokemonID,
	)

	return repository.queryReviews(context, query, pokemonID)
}

func (repository *PostgresRepository) ListReviewsByReviewer(context context.Context, reviewerID int) ([]*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Review.ID, schema.Review.Title, schema.Review.Text, schema.Review.Rating,
		schema.Review.PokemonID, schema.Review.ReviewerID, schema.Review.CreatedAt, schema.Review.UpdatedAt,
		schema.Review.Table, schema.Review.ReviewerID,
	)

	return repository.queryReviews(context, query, reviewerID)
}

// queryReviews executes a review SELECT and hydrates the result rows.
func (repository *PostgresRepository) queryReviews(context context.Context, query string, args ...any) ([]*Review, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		r := &Review{}
		if err := rows.Scan(&r.ID, &r.Title, &r.Text, &r.Rating, &r.PokemonID, &r.ReviewerID, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}
