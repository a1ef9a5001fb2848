package constants

// Role yang dikenal sistem. Tidak ada permission model; role hanya
// menentukan grup route mana yang boleh diakses.
const (
	RoleAdmin   = "admin"
	RolePembina = "pembina"
)

var AllowedRoles = []string{RoleAdmin, RolePembina}
