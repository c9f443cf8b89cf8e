package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAdminRepositoryInsertIfAbsent_Dialects(t *testing.T) {
	cases := []struct {
		driver string
		query  string
	}{
		{"sqlite", "INSERT INTO admins (username, password_hash) VALUES (?, ?) ON CONFLICT(username) DO NOTHING"},
		{"mysql", "INSERT IGNORE INTO admins (username, password_hash) VALUES (?, ?)"},
	}
	for _, tc := range cases {
		t.Run(tc.driver, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta(tc.query)).
				WithArgs("admin", "hash").
				WillReturnResult(sqlmock.NewResult(1, 1))
			mock.ExpectExec(regexp.QuoteMeta(tc.query)).
				WithArgs("admin", "hash").
				WillReturnResult(sqlmock.NewResult(0, 0))

			repo := AdminRepository{DB: db, Driver: tc.driver}
			created, err := repo.InsertIfAbsent(context.Background(), "admin", "hash")
			if err != nil || !created {
				t.Fatalf("first insert = %v, %v", created, err)
			}
			created, err = repo.InsertIfAbsent(context.Background(), "admin", "hash")
			if err != nil || created {
				t.Fatalf("second insert = %v, %v", created, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestAdminRepositoryFindByUsername(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("FROM admins WHERE username = ?").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(1, "admin", "h"))
	mock.ExpectQuery("FROM admins WHERE username = ?").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	repo := AdminRepository{DB: db}
	a, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if a.ID != 1 || a.PasswordHash != "h" {
		t.Fatalf("unexpected admin: %+v", a)
	}
	if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}
