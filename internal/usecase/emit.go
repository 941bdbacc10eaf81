package usecase

import "github.com/orbitlabs/missionctl/internal/domain"

// notify queues a notification when a notifier is wired.
func notify(n domain.Notifier, msg string, severity domain.Severity) {
	if n != nil {
		n.Notify(msg, severity)
	}
}

// play signals a sound cue when a player is wired.
func play(p domain.SoundPlayer, cue domain.SoundCue) {
	if p != nil {
		p.Play(cue)
	}
}
