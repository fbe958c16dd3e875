package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/reelapp/internal/config"
	"github.com/sidereusnuntius/reelapp/internal/db"
	"github.com/sidereusnuntius/reelapp/internal/domain"
	"github.com/sidereusnuntius/reelapp/internal/mocks"
	"github.com/sidereusnuntius/reelapp/internal/service"
	"github.com/sidereusnuntius/reelapp/internal/session"
	"github.com/sidereusnuntius/reelapp/internal/state"
	"go.uber.org/mock/gomock"
)

func newMockedService(t *testing.T) (service.Service, *mocks.MockDB, *mocks.MockMediaStore, *session.Manager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	DB := mocks.NewMockDB(ctrl)
	media := mocks.NewMockMediaStore(ctrl)
	sess := session.New()
	svc := New(state.State{DB: DB, Config: config.Configuration{}}, media, sess)
	return svc, DB, media, sess
}

func TestRegisterLeavesSessionOnStoreFailure(t *testing.T) {
	svc, DB, _, sess := newMockedService(t)

	DB.EXPECT().
		CreateAccount(gomock.Any(), "new_user", "new@user.com", gomock.Any()).
		Return(domain.Account{}, db.ErrInternal)

	_, err := svc.Register(ctx, "new_user", "new@user.com", "password123", "password123")
	if !errors.Is(err, db.ErrInternal) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, db.ErrInternal)
	}

	// The account was never stored, so the session must not transition.
	if _, ok := sess.Current(); ok {
		t.Error("expected session to stay anonymous after a failed signup")
	}
}

func TestUploadReleasesHandleWhenInsertFails(t *testing.T) {
	svc, DB, media, sess := newMockedService(t)
	sess.Authenticate(domain.Account{ID: 1, Username: "editor_pro"})

	content := []byte("clip")
	media.EXPECT().Acquire(content).Return("handle-1", nil)
	DB.EXPECT().InsertReel(gomock.Any(), gomock.Any()).Return(db.ErrInternal)
	// The acquired handle must not leak past the failed command.
	media.EXPECT().Release("handle-1").Return(nil).Times(1)

	_, err := svc.UploadReel(ctx, content)
	if !errors.Is(err, db.ErrInternal) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, db.ErrInternal)
	}
}

func TestDeleteReleasesHandleExactlyOnce(t *testing.T) {
	svc, DB, media, sess := newMockedService(t)
	sess.Authenticate(domain.Account{ID: 1, Username: "editor_pro"})

	reel := domain.Reel{ID: "r1", MediaHandle: "handle-1", UploaderID: 1, UploaderUsername: "editor_pro"}
	DB.EXPECT().GetReel(gomock.Any(), "r1").Return(reel, nil)
	DB.EXPECT().DeleteReel(gomock.Any(), "r1").Return(nil)
	media.EXPECT().Release("handle-1").Return(nil).Times(1)

	if err := svc.DeleteReel(ctx, "r1"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestDeleteKeepsHandleWhenRemovalFails(t *testing.T) {
	svc, DB, _, sess := newMockedService(t)
	sess.Authenticate(domain.Account{ID: 1, Username: "editor_pro"})

	reel := domain.Reel{ID: "r1", MediaHandle: "handle-1", UploaderID: 1}
	DB.EXPECT().GetReel(gomock.Any(), "r1").Return(reel, nil)
	// No Release expectation: releasing after a failed removal would fail the test.
	DB.EXPECT().DeleteReel(gomock.Any(), "r1").Return(db.ErrInternal)

	if err := svc.DeleteReel(ctx, "r1"); !errors.Is(err, db.ErrInternal) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, db.ErrInternal)
	}
}

func TestDeleteByNonOwnerTouchesNothing(t *testing.T) {
	svc, DB, _, sess := newMockedService(t)
	sess.Authenticate(domain.Account{ID: 2, Username: "creative_cat"})

	reel := domain.Reel{ID: "r1", MediaHandle: "handle-1", UploaderID: 1}
	DB.EXPECT().GetReel(gomock.Any(), "r1").Return(reel, nil)
	// Neither DeleteReel nor Release may be called.

	if err := svc.DeleteReel(ctx, "r1"); !errors.Is(err, service.ErrNotOwner) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, service.ErrNotOwner)
	}
}

func TestFollowerNamesUnknownSentinel(t *testing.T) {
	svc, DB, _, sess := newMockedService(t)
	sess.Authenticate(domain.Account{ID: 1, Username: "editor_pro", Followers: []int64{2, 99}})

	DB.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{
		{ID: 1, Username: "editor_pro"},
		{ID: 2, Username: "creative_cat"},
	}, nil)

	names, err := svc.FollowerNames(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]string{"creative_cat", service.UnknownUsername}, names); diff != "" {
		t.Errorf("unexpected names (-want +got):\n%s", diff)
	}
}
