package freefire

import "fmt"

// UpstreamError means the info API couldn't provide a usable answer:
// it was unreachable, responded with a non-200 status or returned a malformed body
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("info api responded with %d status", e.Status)
	}

	if e.Status == 0 {
		return fmt.Sprintf("info api request failed: %s", e.Err.Error())
	}

	return fmt.Sprintf("info api responded with %d status: %s", e.Status, e.Err.Error())
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
