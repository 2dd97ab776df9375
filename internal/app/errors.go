package app

import (
	"errors"
	"fmt"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/ports"
)

// Codes stables exposés à la couche vocale. Un code = une phrase d'excuse.
const (
	CodeNoSearchResults     = "no_search_results"
	CodeUnreachable         = "unreachable"
	CodeRemoteRejected      = "remote_rejected"
	CodeBadResponse         = "bad_response"
	CodeInvalidCommandState = "invalid_command_state"
)

// CodedError porte un code stable plus un message court prononçable.
// Aucune erreur brute de transport ou de parsing ne franchit la frontière
// du core : tout est converti ici.
type CodedError struct {
	Code    string
	Message string
	Err     error
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *CodedError) Unwrap() error { return e.Err }

func noResultsError(topic string, cause error) *CodedError {
	return &CodedError{
		Code:    CodeNoSearchResults,
		Message: fmt.Sprintf("Sorry, I couldn't find a video about %s", topic),
		Err:     cause,
	}
}

func invalidStateError() *CodedError {
	return &CodedError{
		Code:    CodeInvalidCommandState,
		Message: "There's no video on the mirror to control yet",
		Err:     ports.ErrNoCurrentVideo,
	}
}

// asCodedMirrorError classe une erreur du client mirror dans un des
// codes stables. Les erreurs déjà codées passent telles quelles.
func asCodedMirrorError(err error) *CodedError {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded
	}
	var remote *ports.RemoteError
	switch {
	case errors.As(err, &remote):
		return &CodedError{
			Code:    CodeRemoteRejected,
			Message: "The mirror refused the command",
			Err:     err,
		}
	case errors.Is(err, ports.ErrBadResponse):
		return &CodedError{
			Code:    CodeBadResponse,
			Message: "The mirror sent back something I couldn't read",
			Err:     err,
		}
	default:
		// Timeout, connexion refusée, DNS… tout le reste est "unreachable".
		return &CodedError{
			Code:    CodeUnreachable,
			Message: "I can't reach the mirror right now",
			Err:     err,
		}
	}
}
