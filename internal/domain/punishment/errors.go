package punishment

import "errors"

var ErrPunishmentNotFound = errors.New("punishment not found")
