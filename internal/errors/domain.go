package errors

// Constructors for domain rule errors. Messages are user-facing; keep them
// readable at the table, not just in logs.

// NoSlotsAvailable creates a no slots available error
func NoSlotsAvailable(message string) *Error {
	return New(CodeNoSlotsAvailable, message)
}

// NoSlotsAvailablef creates a no slots available error with formatted message
func NoSlotsAvailablef(format string, args ...interface{}) *Error {
	return Newf(CodeNoSlotsAvailable, format, args...)
}

// TooManyPrepared creates a too many prepared spells error
func TooManyPrepared(message string) *Error {
	return New(CodeTooManyPrepared, message)
}

// TooManyPreparedf creates a too many prepared spells error with formatted message
func TooManyPreparedf(format string, args ...interface{}) *Error {
	return Newf(CodeTooManyPrepared, format, args...)
}

// UnknownSpell creates an unknown spell error
func UnknownSpell(message string) *Error {
	return New(CodeUnknownSpell, message)
}

// UnknownSpellf creates an unknown spell error with formatted message
func UnknownSpellf(format string, args ...interface{}) *Error {
	return Newf(CodeUnknownSpell, format, args...)
}

// NotSpellcaster creates a not a spellcaster error
func NotSpellcaster(message string) *Error {
	return New(CodeNotSpellcaster, message)
}

// NotSpellcasterf creates a not a spellcaster error with formatted message
func NotSpellcasterf(format string, args ...interface{}) *Error {
	return Newf(CodeNotSpellcaster, format, args...)
}

// WrongClass creates a wrong class error
func WrongClass(message string) *Error {
	return New(CodeWrongClass, message)
}

// WrongClassf creates a wrong class error with formatted message
func WrongClassf(format string, args ...interface{}) *Error {
	return Newf(CodeWrongClass, format, args...)
}

// AlreadyTransformed creates an already transformed error
func AlreadyTransformed(message string) *Error {
	return New(CodeAlreadyTransformed, message)
}

// NotTransformed creates a not transformed error
func NotTransformed(message string) *Error {
	return New(CodeNotTransformed, message)
}

// NoCharges creates a no charges remaining error
func NoCharges(message string) *Error {
	return New(CodeNoCharges, message)
}

// NoChargesf creates a no charges remaining error with formatted message
func NoChargesf(format string, args ...interface{}) *Error {
	return Newf(CodeNoCharges, format, args...)
}

// CRTooHigh creates a challenge rating too high error
func CRTooHigh(message string) *Error {
	return New(CodeCRTooHigh, message)
}

// CRTooHighf creates a challenge rating too high error with formatted message
func CRTooHighf(format string, args ...interface{}) *Error {
	return Newf(CodeCRTooHigh, format, args...)
}

// SwimNotAllowed creates a swim speed not allowed error
func SwimNotAllowed(message string) *Error {
	return New(CodeSwimNotAllowed, message)
}

// FlyNotAllowed creates a fly speed not allowed error
func FlyNotAllowed(message string) *Error {
	return New(CodeFlyNotAllowed, message)
}

// UnknownRecoveryAbility creates an unknown recovery ability error
func UnknownRecoveryAbility(message string) *Error {
	return New(CodeUnknownRecoveryAbility, message)
}

// UnknownRecoveryAbilityf creates an unknown recovery ability error with formatted message
func UnknownRecoveryAbilityf(format string, args ...interface{}) *Error {
	return Newf(CodeUnknownRecoveryAbility, format, args...)
}

// RecoveryLimitExceeded creates a recovery limit exceeded error
func RecoveryLimitExceeded(message string) *Error {
	return New(CodeRecoveryLimitExceeded, message)
}

// RecoveryLimitExceededf creates a recovery limit exceeded error with formatted message
func RecoveryLimitExceededf(format string, args ...interface{}) *Error {
	return Newf(CodeRecoveryLimitExceeded, format, args...)
}

// InvalidSlotLevel creates an invalid slot level error
func InvalidSlotLevel(message string) *Error {
	return New(CodeInvalidSlotLevel, message)
}

// InvalidSlotLevelf creates an invalid slot level error with formatted message
func InvalidSlotLevelf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidSlotLevel, format, args...)
}

// SummonNotFound creates a summon not found error
func SummonNotFound(message string) *Error {
	return New(CodeSummonNotFound, message)
}

// SummonNotFoundf creates a summon not found error with formatted message
func SummonNotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeSummonNotFound, format, args...)
}

// SessionRequired creates a session required error for the modification gate
func SessionRequired(message string) *Error {
	return New(CodeSessionRequired, message)
}

// IsDomainError reports whether err is a game-rule violation rather than a
// failure. Domain errors are expected outcomes and are never logged as errors.
func IsDomainError(err error) bool {
	return GetCode(err).IsDomain()
}
