package impl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/reelapp/internal/config"
	"github.com/sidereusnuntius/reelapp/internal/db"
	"github.com/sidereusnuntius/reelapp/internal/domain"
	"github.com/sidereusnuntius/reelapp/internal/initialization"
)

var DB db.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	d, err := initialization.OpenDB("file:temp?mode=memory&cache=shared")
	if err != nil {
		fmt.Println("failed to open the test database:", err)
		return
	}

	err = initialization.SetupDB(d, "../../../migrations", "temp")
	if err != nil {
		fmt.Println("failed to set up the test database:", err)
		return
	}
	DB = New(config.Configuration{}, d)
	m.Run()
}

func mustCreate(t *testing.T, username, email string) domain.Account {
	t.Helper()
	a, err := DB.CreateAccount(ctx, username, email, "hash")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return a
}

func TestCreateAccount(t *testing.T) {
	a := mustCreate(t, "first_user", "first@user.com")
	b := mustCreate(t, "second_user", "second@user.com")

	if a.ID == b.ID {
		t.Errorf("expected distinct ids, got %d twice", a.ID)
	}
	if b.ID <= a.ID {
		t.Errorf("expected monotonic ids, got %d then %d", a.ID, b.ID)
	}

	cases := []struct {
		Casename string
		Username string
		Email    string
		Err      error
	}{
		{"username taken", "first_user", "other@user.com", db.ErrUsernameTaken},
		{"email taken", "other_user", "first@user.com", db.ErrEmailTaken},
		{"username check takes priority", "first_user", "first@user.com", db.ErrUsernameTaken},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			_, err := DB.CreateAccount(ctx, c.Username, c.Email, "hash")
			if !errors.Is(err, c.Err) {
				t.Errorf("unexpected err: %s\nexpected \"%s\"", err, c.Err)
			}
		})
	}
}

func TestGetAuthData(t *testing.T) {
	a := mustCreate(t, "auth_user", "auth@user.com")

	u, err := DB.GetAuthDataByUsername(ctx, "auth_user")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if u.ID != a.ID || u.Password != "hash" {
		t.Errorf("unexpected auth data: %+v", u)
	}

	_, err = DB.GetAuthDataByUsername(ctx, "nobody")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, db.ErrNotFound)
	}
}

func TestToggleFollow(t *testing.T) {
	a := mustCreate(t, "follower", "follower@x.com")
	b := mustCreate(t, "followee", "followee@x.com")

	assertSymmetric := func(t *testing.T) {
		t.Helper()
		accounts, err := DB.ListAccounts(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		byID := map[int64]domain.Account{}
		for _, a := range accounts {
			byID[a.ID] = a
		}
		for _, a := range accounts {
			for _, followee := range a.Following {
				if !contains(byID[followee].Followers, a.ID) {
					t.Errorf("account %d follows %d, but the reverse edge is missing", a.ID, followee)
				}
			}
			for _, follower := range a.Followers {
				if !contains(byID[follower].Following, a.ID) {
					t.Errorf("account %d is followed by %d, but the reverse edge is missing", a.ID, follower)
				}
			}
		}
	}

	following, err := DB.ToggleFollow(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !following {
		t.Error("expected first toggle to create the edge")
	}
	assertSymmetric(t)

	got, err := DB.GetAccountByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !contains(got.Following, b.ID) {
		t.Errorf("expected %d to follow %d, following: %v", a.ID, b.ID, got.Following)
	}

	// The second toggle must return to the prior state.
	following, err = DB.ToggleFollow(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if following {
		t.Error("expected second toggle to remove the edge")
	}
	assertSymmetric(t)

	got, err = DB.GetAccountByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if contains(got.Following, b.ID) {
		t.Errorf("expected edge to be gone, following: %v", got.Following)
	}
}

func TestSelfFollowRejectedBySchema(t *testing.T) {
	a := mustCreate(t, "narcissus", "narcissus@x.com")

	// The service rejects self-follows before they reach the store; the CHECK
	// constraint is the backstop.
	if _, err := DB.ToggleFollow(ctx, a.ID, a.ID); err == nil {
		t.Error("expected the schema to reject a self edge")
	}

	got, err := DB.GetAccountByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got.Following) != 0 || len(got.Followers) != 0 {
		t.Errorf("expected unchanged sets, got %+v", got)
	}
}

func TestReels(t *testing.T) {
	a := mustCreate(t, "uploader", "uploader@x.com")

	r1 := domain.Reel{ID: "reel-1", MediaHandle: "h1", UploaderID: a.ID, UploaderUsername: a.Username}
	r2 := domain.Reel{ID: "reel-2", MediaHandle: "h2", UploaderID: a.ID, UploaderUsername: a.Username}

	for _, r := range []domain.Reel{r1, r2} {
		if err := DB.InsertReel(ctx, r); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	reels, err := DB.ListReels(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]domain.Reel{r2, r1}, reels); diff != "" {
		t.Errorf("unexpected discover ordering (-want +got):\n%s", diff)
	}

	mine, err := DB.ListReelsByUploader(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(reels, mine); diff != "" {
		t.Errorf("unexpected uploader projection (-want +got):\n%s", diff)
	}

	if err = DB.DeleteReel(ctx, r1.ID); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if err = DB.DeleteReel(ctx, r1.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, db.ErrNotFound)
	}

	if _, err = DB.GetReel(ctx, r1.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, db.ErrNotFound)
	}
}

func contains(ids []int64, id int64) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}
