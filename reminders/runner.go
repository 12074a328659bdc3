package reminders

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/mailer"
	"github.com/Roei786/Bridal-salon-sub000/rdx"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"github.com/julienschmidt/httprouter"
)

const sweepLockKey = "reminders:sweep:lock"

// NewSweeper wires the production sweeper.
func NewSweeper(mail mailer.Sender) *Sweeper {
	return &Sweeper{
		Brides: MongoBrideStore{},
		Appts:  MongoAppointmentSource{},
		Mail:   mail,
	}
}

// RunSweep runs one sweep under the distributed run lock, so a retried
// trigger cannot overlap a sweep already in flight.
func RunSweep(ctx context.Context, s *Sweeper) {
	ok, err := rdx.AcquireLock(sweepLockKey, 5*time.Minute)
	if err != nil {
		log.Printf("Sweep: lock error: %v", err)
		return
	}
	if !ok {
		log.Println("Sweep: another run is in progress, skipping")
		return
	}
	defer rdx.ReleaseLock(sweepLockKey)

	start := time.Now()
	sent, err := s.Run(ctx)
	if err != nil {
		log.Printf("Sweep failed: %v", err)
		return
	}
	log.Printf("Sweep done: %d reminder(s) sent in %v", sent, time.Since(start))
}

// StartSweeper runs the sweep on a fixed cadence until ctx is cancelled.
func StartSweeper(ctx context.Context, s *Sweeper, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			RunSweep(ctx, s)
		}
	}
}

// TriggerSweep is the scheduled-trigger entry point. It kicks off a sweep and
// returns immediately; callers get no result beyond acceptance.
func TriggerSweep(s *Sweeper) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		go RunSweep(context.Background(), s)
		utils.RespondWithJSON(w, http.StatusAccepted, map[string]string{"status": "sweep started"})
	}
}
