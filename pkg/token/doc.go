// Package token provides signed, stateless session tokens.
//
// Tokens are HMAC-SHA256 signed JWTs carrying the caller's identity and a
// fixed expiry. Validity is purely a function of signature and expiry; no
// server-side session state exists, so a token remains valid until its
// embedded expiry regardless of server restarts. There is no early
// revocation.
package token
