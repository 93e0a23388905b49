package requests

type CreateUsuario struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Password string `json:"password" validate:"required,password"`
}

type UpdateUsuario struct {
	Nombre   string `json:"nombre,omitempty"`
	Apellido string `json:"apellido,omitempty"`
	Activo   *bool  `json:"activo,omitempty"`

	ConsultorioContextoActual string `json:"consultorio_contexto_actual,omitempty"`
}

// AssignRoles sets either a global role or per-consultorio roles; sending
// both is rejected by the usecase.
type AssignRoles struct {
	RolGlobal        string                 `json:"rol_global,omitempty"`
	RolesConsultorio []RolConsultorioAssign `json:"roles_consultorio,omitempty"`
}

type RolConsultorioAssign struct {
	ConsultorioID string `json:"consultorio_id" validate:"required"`
	RolNombre     string `json:"rol_nombre" validate:"required"`
}

type UpsertRol struct {
	Nombre   string   `json:"nombre" validate:"required"`
	Permisos []string `json:"permisos" validate:"dive,permission"`
}
