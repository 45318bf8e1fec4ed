package handlers

import "net/http"

// Root is the liveness probe.
func Root(writer http.ResponseWriter, req *http.Request) {
	_, _ = writer.Write([]byte("Boss is sitting"))
}
