package common

import (
	"fmt"
	"strings"

	"aietrace/internal/aie"
)

// Error represents the library error object.
type Error struct {
	Code    aie.Err
	Sev     aie.ErrSeverity
	Loc     aie.TileLoc
	Message string
}

func NewError(sev aie.ErrSeverity, code aie.Err) *Error {
	return &Error{
		Code: code,
		Sev:  sev,
		Loc:  aie.BadTileLoc,
	}
}

func NewErrorMsg(sev aie.ErrSeverity, code aie.Err, msg string) *Error {
	return &Error{
		Code:    code,
		Sev:     sev,
		Loc:     aie.BadTileLoc,
		Message: msg,
	}
}

func NewErrorWithLoc(sev aie.ErrSeverity, code aie.Err, loc aie.TileLoc) *Error {
	return &Error{
		Code: code,
		Sev:  sev,
		Loc:  loc,
	}
}

func NewErrorWithLocMsg(sev aie.ErrSeverity, code aie.Err, loc aie.TileLoc, msg string) *Error {
	return &Error{
		Code:    code,
		Sev:     sev,
		Loc:     loc,
		Message: msg,
	}
}

// Errorf builds an error-severity object with a formatted message.
func Errorf(code aie.Err, format string, args ...any) *Error {
	return NewErrorMsg(aie.ErrSevError, code, fmt.Sprintf(format, args...))
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	switch e.Sev {
	case aie.ErrSevNone:
		return "LIBRARY INTERNAL ERROR: Invalid Error Object"
	case aie.ErrSevError:
		sb.WriteString("ERROR:")
	case aie.ErrSevWarn:
		sb.WriteString("WARN :")
	case aie.ErrSevInfo:
		sb.WriteString("INFO :")
	default:
		return "LIBRARY INTERNAL ERROR: Invalid Error Object"
	}

	sb.WriteString(fmt.Sprintf("0x%04x ", e.Code))

	if desc, ok := errorCodeDesc[e.Code]; ok {
		sb.WriteString(fmt.Sprintf("(%s) [%s]; ", desc.name, desc.msg))
	} else {
		sb.WriteString("(unknown); ")
	}

	if e.Loc != aie.BadTileLoc {
		sb.WriteString(fmt.Sprintf("Tile=%s; ", e.Loc))
	}

	sb.WriteString(e.Message)
	return sb.String()
}

// Is matches another *Error carrying the same code, so sentinel objects work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

type errDesc struct {
	name string
	msg  string
}

var errorCodeDesc = map[aie.Err]errDesc{
	aie.OK:                    {"AIE_OK", "No Error."},
	aie.ErrFail:               {"AIE_ERR_FAIL", "General failure."},
	aie.ErrInvalidParamVal:    {"AIE_ERR_INVALID_PARAM_VAL", "Invalid value parameter passed to component."},
	aie.ErrEventRange:         {"AIE_ERR_EVENT_RANGE", "Event number does not fit the 8-bit edge detection field."},
	aie.ErrUnknownGeneration:  {"AIE_ERR_UNKNOWN_GENERATION", "Hardware generation not supported."},
	aie.ErrUnknownModule:      {"AIE_ERR_UNKNOWN_MODULE", "Module type not known."},
	aie.ErrDeviceWrite:        {"AIE_ERR_DEVICE_WRITE", "Device rejected a configuration write."},
	aie.ErrBadColumnRange:     {"AIE_ERR_BAD_COLUMN_RANGE", "Column range outside the tile array."},
	aie.ErrSettingsParse:      {"AIE_ERR_SETTINGS_PARSE", "Settings file parse error."},
	aie.ErrNoBroadcastChannel: {"AIE_ERR_NO_BROADCAST_CHANNEL", "Broadcast channel id not valid or not reserved."},
	aie.ErrLast:               {"AIE_ERR_LAST", "No error - error code end marker"},
}
