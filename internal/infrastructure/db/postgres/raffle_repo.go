package postgres

import (
	"context"
	"database/sql"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

type RaffleRepo struct {
	db *sql.DB
}

func NewRaffleRepo(db *sql.DB) *RaffleRepo {
	return &RaffleRepo{db: db}
}

func (r *RaffleRepo) Create(ctx context.Context, ra domain.Raffle) (domain.Raffle, error) {
	const q = `
INSERT INTO raffles (title, description, question)
VALUES ($1,$2,$3)
RETURNING id, created_at;
`
	err := r.db.QueryRowContext(ctx, q, ra.Title, ra.Description, ra.Question).
		Scan(&ra.ID, &ra.CreatedAt)
	if err != nil {
		return domain.Raffle{}, domain.ErrDBUnavailable(err)
	}
	return ra, nil
}

func (r *RaffleRepo) List(ctx context.Context) ([]domain.Raffle, error) {
	const q = `
SELECT id, title, description, question, created_at
FROM raffles
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Raffle
	for rows.Next() {
		var ra domain.Raffle
		if err := rows.Scan(&ra.ID, &ra.Title, &ra.Description, &ra.Question, &ra.CreatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, ra)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *RaffleRepo) GetByID(ctx context.Context, id int64) (domain.Raffle, error) {
	const q = `
SELECT id, title, description, question, created_at
FROM raffles
WHERE id = $1
LIMIT 1;
`
	var ra domain.Raffle
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&ra.ID, &ra.Title, &ra.Description, &ra.Question, &ra.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.Raffle{}, domain.ErrRecordNotFound("raffle")
		}
		return domain.Raffle{}, domain.ErrDBUnavailable(err)
	}
	return ra, nil
}

func (r *RaffleRepo) AddParticipant(ctx context.Context, p domain.RaffleParticipant) (domain.RaffleParticipant, error) {
	const q = `
INSERT INTO raffle_participants (raffle_id, name, email, phone, answer)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, created_at;
`
	err := r.db.QueryRowContext(ctx, q, p.RaffleID, p.Name, p.Email, p.Phone, p.Answer).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return domain.RaffleParticipant{}, domain.ErrDBUnavailable(err)
	}
	return p, nil
}

func (r *RaffleRepo) ListParticipants(ctx context.Context, raffleID int64) ([]domain.RaffleParticipant, error) {
	const q = `
SELECT id, raffle_id, name, email, phone, answer, created_at
FROM raffle_participants
WHERE raffle_id = $1
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q, raffleID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.RaffleParticipant
	for rows.Next() {
		var p domain.RaffleParticipant
		if err := rows.Scan(&p.ID, &p.RaffleID, &p.Name, &p.Email, &p.Phone, &p.Answer, &p.CreatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
