package interfaces

import "net/http"

// HTTPHandler is implemented by the transport layer entry point.
type HTTPHandler interface {
	http.Handler
}
