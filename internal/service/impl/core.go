package core

import (
	"github.com/sidereusnuntius/reelapp/internal/config"
	"github.com/sidereusnuntius/reelapp/internal/db"
	"github.com/sidereusnuntius/reelapp/internal/service"
	"github.com/sidereusnuntius/reelapp/internal/session"
	"github.com/sidereusnuntius/reelapp/internal/state"
	"github.com/sidereusnuntius/reelapp/internal/storage"
)

const BcryptCost = 10

type AppService struct {
	Config  config.Configuration
	DB      db.DB
	Media   storage.MediaStore
	Session *session.Manager
}

func New(state state.State, media storage.MediaStore, sess *session.Manager) service.Service {
	return &AppService{
		Config:  state.Config,
		DB:      state.DB,
		Media:   media,
		Session: sess,
	}
}
