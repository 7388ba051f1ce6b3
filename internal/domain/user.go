package domain

type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"` // bcrypt hash
	IsAdmin  bool   `db:"is_admin" json:"isAdmin"`
}

type InsertUser struct {
	Username string
	Password string // already hashed
	IsAdmin  bool
}
