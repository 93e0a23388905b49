package models

import "time"

type Session struct {
	SessionID string       `json:"session_id"`
	UsuarioID string       `json:"usuario_id"`
	Perfil    *UserProfile `json:"perfil"`
	ExpiresAt time.Time    `json:"expires_at"`
}
