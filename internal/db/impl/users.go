package impl

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sidereusnuntius/reelapp/internal/db"
	"github.com/sidereusnuntius/reelapp/internal/domain"
)

func (d *dbImpl) CreateAccount(ctx context.Context, username, email, passwordHash string) (account domain.Account, err error) {
	err = d.WithTx(func(tx *sql.Tx) error {
		// The UNIQUE constraints are the backstop; checking here gives a stable
		// error priority when both the username and the email are taken.
		var taken bool
		row := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT TRUE FROM users WHERE username = ?)", username)
		if err := row.Scan(&taken); err != nil {
			return err
		}
		if taken {
			return db.ErrUsernameTaken
		}

		row = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT TRUE FROM users WHERE email = ?)", email)
		if err := row.Scan(&taken); err != nil {
			return err
		}
		if taken {
			return db.ErrEmailTaken
		}

		res, err := tx.ExecContext(ctx,
			"INSERT INTO users(username, email, password) VALUES (?, ?, ?)",
			username, email, passwordHash)
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		account = domain.Account{
			ID:       id,
			Username: username,
			Email:    email,
		}
		return nil
	})
	return
}

func (d *dbImpl) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	row := d.db.QueryRowContext(ctx, "SELECT id, username, email FROM users WHERE id = ?", id)

	var a domain.Account
	if err := row.Scan(&a.ID, &a.Username, &a.Email); err != nil {
		return domain.Account{}, d.HandleError(err)
	}

	if err := d.loadEdges(ctx, &a); err != nil {
		return domain.Account{}, d.HandleError(err)
	}
	return a, nil
}

func (d *dbImpl) GetAuthDataByUsername(ctx context.Context, username string) (domain.AuthData, error) {
	row := d.db.QueryRowContext(ctx, "SELECT id, username, password FROM users WHERE username = ?", username)

	var u domain.AuthData
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		return domain.AuthData{}, d.HandleError(err)
	}
	return u, nil
}

func (d *dbImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT id, username, email FROM users ORDER BY id")
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	index := map[int64]int{}
	for rows.Next() {
		var a domain.Account
		if err = rows.Scan(&a.ID, &a.Username, &a.Email); err != nil {
			return nil, d.HandleError(err)
		}
		index[a.ID] = len(accounts)
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, d.HandleError(err)
	}

	// One pass over the edge table fills both directions for every account.
	edges, err := d.db.QueryContext(ctx, "SELECT follower_id, followee_id FROM follows")
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer edges.Close()

	for edges.Next() {
		var follower, followee int64
		if err = edges.Scan(&follower, &followee); err != nil {
			return nil, d.HandleError(err)
		}
		if i, ok := index[follower]; ok {
			accounts[i].Following = append(accounts[i].Following, followee)
		}
		if i, ok := index[followee]; ok {
			accounts[i].Followers = append(accounts[i].Followers, follower)
		}
	}
	return accounts, d.HandleError(edges.Err())
}

func (d *dbImpl) ToggleFollow(ctx context.Context, actorID, targetID int64) (following bool, err error) {
	err = d.WithTx(func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"DELETE FROM follows WHERE follower_id = ? AND followee_id = ?",
			actorID, targetID)
		if err != nil {
			return err
		}

		removed, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if removed > 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO follows(follower_id, followee_id) VALUES (?, ?)",
			actorID, targetID)
		if err != nil {
			return fmt.Errorf("%w: %s", db.ErrInternal, err)
		}
		following = true
		return nil
	})
	return
}

func (d *dbImpl) loadEdges(ctx context.Context, a *domain.Account) error {
	rows, err := d.db.QueryContext(ctx, "SELECT follower_id FROM follows WHERE followee_id = ?", a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return err
		}
		a.Followers = append(a.Followers, id)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	rows, err = d.db.QueryContext(ctx, "SELECT followee_id FROM follows WHERE follower_id = ?", a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return err
		}
		a.Following = append(a.Following, id)
	}
	return rows.Err()
}
