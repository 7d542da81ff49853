package errors

import "net/http"

// Code represents an error code
type Code string

// Transport codes: failures and caller mistakes, logged as errors when 5xx.
const (
	CodeOK               Code = "OK"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeAborted          Code = "ABORTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
)

// Domain rule codes. These are expected, user-facing outcomes of the
// character resource engine, not failures: handlers surface them as 4xx
// and never log them as errors.
const (
	CodeNoSlotsAvailable       Code = "NO_SLOTS_AVAILABLE"
	CodeTooManyPrepared        Code = "TOO_MANY_PREPARED"
	CodeUnknownSpell           Code = "UNKNOWN_SPELL"
	CodeNotSpellcaster         Code = "NOT_SPELLCASTER"
	CodeWrongClass             Code = "WRONG_CLASS"
	CodeAlreadyTransformed     Code = "ALREADY_TRANSFORMED"
	CodeNotTransformed         Code = "NOT_TRANSFORMED"
	CodeNoCharges              Code = "NO_CHARGES"
	CodeCRTooHigh              Code = "CR_TOO_HIGH"
	CodeSwimNotAllowed         Code = "SWIM_NOT_ALLOWED"
	CodeFlyNotAllowed          Code = "FLY_NOT_ALLOWED"
	CodeUnknownRecoveryAbility Code = "UNKNOWN_RECOVERY_ABILITY"
	CodeRecoveryLimitExceeded  Code = "RECOVERY_LIMIT_EXCEEDED"
	CodeInvalidSlotLevel       Code = "INVALID_SLOT_LEVEL"
	CodeSummonNotFound         Code = "SUMMON_NOT_FOUND"
	CodeSessionRequired        Code = "SESSION_REQUIRED"
)

// domainCodes is the set of rule-violation codes produced by the engine.
var domainCodes = map[Code]struct{}{
	CodeNoSlotsAvailable:       {},
	CodeTooManyPrepared:        {},
	CodeUnknownSpell:           {},
	CodeNotSpellcaster:         {},
	CodeWrongClass:             {},
	CodeAlreadyTransformed:     {},
	CodeNotTransformed:         {},
	CodeNoCharges:              {},
	CodeCRTooHigh:              {},
	CodeSwimNotAllowed:         {},
	CodeFlyNotAllowed:          {},
	CodeUnknownRecoveryAbility: {},
	CodeRecoveryLimitExceeded:  {},
	CodeInvalidSlotLevel:       {},
	CodeSummonNotFound:         {},
}

// IsDomain reports whether the code is a game-rule violation.
func (c Code) IsDomain() bool {
	_, ok := domainCodes[c]
	return ok
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeAborted:
		return http.StatusConflict
	case CodeInternal:
		return http.StatusInternalServerError
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeNoSlotsAvailable, CodeTooManyPrepared, CodeNotSpellcaster,
		CodeWrongClass, CodeAlreadyTransformed, CodeNotTransformed,
		CodeNoCharges, CodeCRTooHigh, CodeSwimNotAllowed, CodeFlyNotAllowed,
		CodeRecoveryLimitExceeded:
		return http.StatusConflict
	case CodeUnknownSpell, CodeInvalidSlotLevel:
		return http.StatusBadRequest
	case CodeUnknownRecoveryAbility, CodeSummonNotFound:
		return http.StatusNotFound
	case CodeSessionRequired:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
