package service

import "errors"

// ErrEventDelivery is returned when an enrollment transition succeeded but at
// least one event handler failed to process its outcome. The transition is
// never rolled back.
var ErrEventDelivery = errors.New("failed to deliver enrollment event")
