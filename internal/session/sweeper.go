package session

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically evicts expired MemoryStore entries. Redis expires
// session keys on its own, so only the in-memory store needs one.
type Sweeper struct {
	store *MemoryStore
	cron  *cron.Cron
}

func NewSweeper(store *MemoryStore) *Sweeper {
	return &Sweeper{store: store, cron: cron.New()}
}

// Start initializes the sweep job
func (s *Sweeper) Start() {
	_, err := s.cron.AddFunc("@every 5m", func() {
		if n := s.store.Sweep(); n > 0 {
			log.Printf("[session] swept %d expired sessions", n)
		}
	})

	if err != nil {
		log.Printf("Failed to create session sweep job: %v", err)
		return
	}

	log.Println("Session sweeper started (running every 5 minutes)")
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}
