package contract

import "errors"

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

var ErrInvalidStatus = errors.New("invalid contract status")

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOngoing, StatusFinished, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
