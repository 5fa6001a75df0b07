package hoststore

import "errors"

var ErrInvalidReminderData = errors.New("invalid reminder record")
