package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to errors leaving a Handler.
const (
	TextCodeInvalidMessage = "BLOG_COMMAND_INVALID"
	TextCodeCanceled       = "BLOG_COMMAND_CANCELED"
	TextCodeTimeout        = "BLOG_COMMAND_TIMEOUT"
	TextCodeFailed         = "BLOG_COMMAND_FAILED"
)

// tag wraps err with category and code unless an inner package already
// categorised it, in which case its own code is kept.
func tag(err error, category goerrors.Category, code, message string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}

func invalidMessage(err error) error {
	return tag(err, goerrors.CategoryValidation, TextCodeInvalidMessage, "command message is invalid")
}

func interrupted(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return tag(err, goerrors.CategoryCommand, TextCodeTimeout, "command timed out")
	}
	return tag(err, goerrors.CategoryCommand, TextCodeCanceled, "command was canceled")
}

func failed(err error) error {
	return tag(err, goerrors.CategoryCommand, TextCodeFailed, "command failed")
}
