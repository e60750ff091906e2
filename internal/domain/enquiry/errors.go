package enquiry

import "errors"

var (
	ErrEnquiryNotFound = errors.New("enquiry not found")
	ErrEnquiryClosed   = errors.New("enquiry is already closed")
)
