package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of a route group.
	RootPath = "/"

	// ErrNilACSFatalLogMsg is used if the app, cfg or state pointer is nil.
	ErrNilACSFatalLogMsg = "app, cfg or state is nil"

	// QueryMsg carries a transient success message across a redirect.
	QueryMsg = "msg"

	// QueryErr carries a transient failure message across a redirect.
	QueryErr = "err"
)
