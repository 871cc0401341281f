package journal

import (
	"errors"
	"fmt"

	"timetracker/pkg/cipher"
)

// Domain-specific errors for the journal package.
var (
	// ErrDecrypt covers malformed ciphertext and wrong passphrases.
	ErrDecrypt = cipher.ErrDecrypt
	// ErrMalformedData means the decrypted payload has the wrong shape.
	ErrMalformedData = errors.New("malformed data")
	// ErrValidation is the parent of every input-validation error.
	ErrValidation = errors.New("validation failed")

	ErrLocked       = errors.New("journal is locked")
	ErrTaskNotFound = errors.New("task not found")
	ErrModeRequired = errors.New("journal is not empty: choose merge or replace")
	ErrInitialised  = errors.New("passphrase is already set up")
	// ErrUnreadable blocks writes after the stored journal failed to load,
	// so a wrong passphrase cannot overwrite it.
	ErrUnreadable = errors.New("stored journal could not be read with this passphrase")
)

// Validation errors; all satisfy errors.Is(err, ErrValidation).
var (
	ErrEmptyTaskName      = fmt.Errorf("%w: task name is empty", ErrValidation)
	ErrNegativeEstimate   = fmt.Errorf("%w: estimated minutes must not be negative", ErrValidation)
	ErrNegativeElapsed    = fmt.Errorf("%w: elapsed seconds must not be negative", ErrValidation)
	ErrEmptyPassphrase    = fmt.Errorf("%w: passphrase is empty", ErrValidation)
	ErrPassphraseTooShort = fmt.Errorf("%w: passphrase must be at least %d characters", ErrValidation, MinPassphraseLength)
	ErrPassphraseMismatch = fmt.Errorf("%w: passphrases do not match", ErrValidation)
	ErrEmptyBlob          = fmt.Errorf("%w: encrypted data is empty", ErrValidation)
	ErrNothingSelected    = fmt.Errorf("%w: no suggestions selected", ErrValidation)
	ErrInvalidMode        = fmt.Errorf("%w: unknown reconcile mode", ErrValidation)
	ErrInvalidReview      = fmt.Errorf("%w: completed tasks exceed total", ErrValidation)
)
