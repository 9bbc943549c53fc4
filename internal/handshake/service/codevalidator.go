package service

import "crypto/subtle"

// CodeValidator is the capability the code check delegates to. A real
// deployment would hang an OTP provider off this interface; validating and
// delivering real one-time codes is explicitly out of scope here.
type CodeValidator interface {
	ValidateCode(code string) bool
}

// StaticCodeValidator accepts exactly one configured code. The comparison
// is constant time so response timing reveals nothing about how close a
// guess was.
type StaticCodeValidator struct {
	code string
}

func NewStaticCodeValidator(code string) *StaticCodeValidator {
	return &StaticCodeValidator{code: code}
}

func (v *StaticCodeValidator) ValidateCode(code string) bool {
	return subtle.ConstantTimeCompare([]byte(v.code), []byte(code)) == 1
}
