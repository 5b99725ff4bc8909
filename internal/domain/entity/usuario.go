package entity

import "time"

// Usuario cuenta de acceso a la API. PasswordHash es bcrypt.
type Usuario struct {
	ID           string
	Email        string
	Nombre       string
	PasswordHash string
	CreatedAt    time.Time
}
