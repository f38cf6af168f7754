package models

import "time"

// StatusCheck is a client liveness ping persisted for audit.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
