// Package usuario contains the Usuario aggregate: the system accounts that
// register, authenticate, and manage fleet data. The domain never sees raw
// passwords, only the opaque hash produced by the PasswordHasher port.
package usuario
