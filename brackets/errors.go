package brackets

import (
	"errors"
	"fmt"
)

// Две корневые категории ошибок движка. Конкретные ошибки оборачивают их
// через %w, обработчики различают категории через errors.Is.
var (
	ErrValidation = errors.New("bracket validation failed")
	ErrConflict   = errors.New("bracket state conflict")
)

var (
	ErrSeedSlotUnfilled = fmt.Errorf("%w: seed assignment has an unfilled slot", ErrValidation)
	ErrTooFewQualifiers = fmt.Errorf("%w: at least 2 qualifiers are required", ErrValidation)
	ErrDoubleBye        = fmt.Errorf("%w: both seeds of a first-round pair are byes", ErrValidation)
	ErrNotGenerated     = fmt.Errorf("%w: bracket is not generated", ErrValidation)
	ErrMatchNotFound    = fmt.Errorf("%w: bracket match not found", ErrValidation)
	ErrMatchNotReady    = fmt.Errorf("%w: match is missing a player", ErrValidation)
	ErrDrawnResult      = fmt.Errorf("%w: an elimination match cannot end in a draw", ErrValidation)

	ErrMatchAlreadyDecided = fmt.Errorf("%w: match already has a winner", ErrConflict)
	ErrAlreadyGenerated    = fmt.Errorf("%w: bracket is already generated", ErrConflict)
)
