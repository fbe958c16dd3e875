package state

import (
	"github.com/sidereusnuntius/reelapp/internal/config"
	"github.com/sidereusnuntius/reelapp/internal/db"
)

type State struct {
	DB     db.DB
	Config config.Configuration
}
