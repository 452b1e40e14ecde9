package apperr

import (
	"errors"
	"fmt"
)

const (
	Invalid       Kind = "invalid"
	NotAuthorized Kind = "not_authorized"
	RequestFailed Kind = "request_failed"
	Network       Kind = "network"
	Internal      Kind = "internal"
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.PublicMsg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.PublicMsg)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

// Constructors (PublicMsg must be short and safe to show)
func InvalidErr(publicMsg string, fields map[string]string) *AppError {
	return &AppError{Kind: Invalid, PublicMsg: publicMsg, Fields: fields}
}
func NotAuthorizedErr(publicMsg string) *AppError {
	return &AppError{Kind: NotAuthorized, PublicMsg: publicMsg}
}
func RequestFailedErr(publicMsg string) *AppError {
	return &AppError{Kind: RequestFailed, PublicMsg: publicMsg}
}
func NetworkErr(publicMsg string, err error) *AppError {
	return &AppError{Kind: Network, PublicMsg: publicMsg, Err: err}
}

// Wrap: internal error without a public message
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Kind: Internal, PublicMsg: "Something went wrong.", Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsKind(err error, k Kind) bool {
	ae, ok := As(err)
	return ok && ae.Kind == k
}

func PublicMessage(err error) string {
	if ae, ok := As(err); ok && ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	return "Something went wrong."
}
