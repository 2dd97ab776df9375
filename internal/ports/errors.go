package ports

import (
	"errors"
	"fmt"
)

// Sentinelles partagées : chaque échec traversant la frontière du core est
// classé dans l'une d'elles avant d'atteindre l'appelant.
var (
	// ErrNoResults : le provider n'a rien renvoyé d'utilisable après filtrage.
	ErrNoResults = errors.New("no search results")

	// ErrUnreachable : timeout ou échec réseau vers le mirror.
	ErrUnreachable = errors.New("mirror unreachable")

	// ErrBadResponse : réponse 2xx mais corps indéchiffrable.
	ErrBadResponse = errors.New("bad mirror response")

	// ErrNoCurrentVideo : contrôle relatif (seek/restart) sans vidéo courante.
	ErrNoCurrentVideo = errors.New("no current video")
)

// RemoteError : le mirror a répondu non-2xx. Le status est conservé.
type RemoteError struct {
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("mirror rejected request: http %d", e.Status)
}
