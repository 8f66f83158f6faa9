package respctx

import "net/http"

// Family is the class of a status code, i.e. the first digit.
type Family int

const (
	Other Family = iota
	Informational
	Successful
	Redirection
	ClientError
	ServerError
)

func (f Family) String() string {
	switch f {
	case Informational:
		return "Informational"
	case Successful:
		return "Successful"
	case Redirection:
		return "Redirection"
	case ClientError:
		return "Client Error"
	case ServerError:
		return "Server Error"
	default:
		return "Other"
	}
}

// FamilyOf returns the family of a status code.
func FamilyOf(code int) Family {
	switch code / 100 {
	case 1:
		return Informational
	case 2:
		return Successful
	case 3:
		return Redirection
	case 4:
		return ClientError
	case 5:
		return ServerError
	default:
		return Other
	}
}

// StatusInfo is the structured view of a response status: the code plus
// its reason phrase.
type StatusInfo struct {
	Code   int
	Reason string
}

// NewStatusInfo returns status info for a code with the canonical reason
// phrase filled in.
func NewStatusInfo(code int) *StatusInfo {
	return &StatusInfo{Code: code, Reason: http.StatusText(code)}
}

func (s *StatusInfo) Family() Family {
	return FamilyOf(s.Code)
}
