package platform

// Package platform contains OS integration: validating outbound links and
// handing them to the system URL handler.
