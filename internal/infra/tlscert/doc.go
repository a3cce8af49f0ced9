// Package tlscert provides hot reloading of the server TLS keypair.
//
// The reloader watches the certificate and key files with fsnotify and
// swaps the parsed keypair in place, so certificate rotation does not
// require a server restart. It plugs into tls.Config via the
// GetCertificate callback.
package tlscert
