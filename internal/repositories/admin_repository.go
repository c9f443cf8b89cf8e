package repositories

import (
	"context"

	intdb "carbooking/internal/db"
	"carbooking/internal/domain/models"
)

type AdminRepository struct {
	DB     intdb.DBTX
	Driver string
}

// FindByUsername returns sql.ErrNoRows when no admin has that username.
func (r AdminRepository) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	var a models.Admin
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM admins WHERE username = ?`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash)
	return a, err
}

// InsertIfAbsent creates the admin in one statement, leaning on the unique
// username index. It reports whether a row was inserted.
func (r AdminRepository) InsertIfAbsent(ctx context.Context, username, passwordHash string) (bool, error) {
	query := `INSERT INTO admins (username, password_hash) VALUES (?, ?) ON CONFLICT(username) DO NOTHING`
	if r.Driver == "mysql" {
		query = `INSERT IGNORE INTO admins (username, password_hash) VALUES (?, ?)`
	}
	res, err := r.DB.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
