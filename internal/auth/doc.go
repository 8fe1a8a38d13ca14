// Package auth implements the authentication and authorization core of
// the stockroom API: bcrypt credential hashing, HS256 session tokens,
// a bun-backed user directory, and a role-based access guard with its
// fiber middleware.
package auth
