package repos

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"packcatalog/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = `id, username, password, is_admin`

func (r *UserRepo) ByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, r.db.Rebind(`SELECT `+userCols+` FROM users WHERE id=?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ByUsername matches the username exactly.
func (r *UserRepo) ByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, r.db.Rebind(`SELECT `+userCols+` FROM users WHERE username=?`), username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		INSERT INTO users(username, password, is_admin)
		VALUES(?,?,?)
		RETURNING `+userCols), in.Username, in.Password, in.IsAdmin).StructScan(&u)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepo) BindSession(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	t := now()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO sessions(id, user_id, created_at, expires_at)
		VALUES(?,?,?,?)`), sid, userID, t, t.Add(ttl))
	return translate(err)
}

// SessionUser resolves an unexpired, bound session to its user.
func (r *UserRepo) SessionUser(ctx context.Context, sid string) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, r.db.Rebind(`
		SELECT u.id, u.username, u.password, u.is_admin
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = ? AND s.expires_at > ?`), sid, now())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(ctx context.Context, sid string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM sessions WHERE id=?`), sid)
	return err
}

// PurgeExpiredSessions removes sessions past their expiry and returns how many.
func (r *UserRepo) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM sessions WHERE expires_at <= ?`), now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
