package postgres

import (
	"context"
	"database/sql"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

type FileRepo struct {
	db *sql.DB
}

func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

func (r *FileRepo) Create(ctx context.Context, f domain.StoredFile) (domain.StoredFile, error) {
	const q = `
INSERT INTO files (filename, file_key, url, mime_type, size, uploaded_by)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id, created_at;
`
	err := r.db.QueryRowContext(ctx, q, f.Filename, f.FileKey, f.URL, f.MimeType, f.Size, f.UploadedBy).
		Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return domain.StoredFile{}, domain.ErrDBUnavailable(err)
	}
	return f, nil
}

func (r *FileRepo) List(ctx context.Context) ([]domain.StoredFile, error) {
	const q = `
SELECT id, filename, file_key, url, mime_type, size, uploaded_by, created_at
FROM files
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.StoredFile
	for rows.Next() {
		var f domain.StoredFile
		if err := rows.Scan(&f.ID, &f.Filename, &f.FileKey, &f.URL, &f.MimeType, &f.Size, &f.UploadedBy, &f.CreatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *FileRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM files WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrRecordNotFound("file")
	}
	return nil
}
