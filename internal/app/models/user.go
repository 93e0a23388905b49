package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Usuario struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Nombre    string             `bson:"nombre" json:"nombre"`
	Apellido  string             `bson:"apellido" json:"apellido"`
	Password  string             `bson:"password" json:"-"`
	Activo    bool               `bson:"activo" json:"activo"`
	Superadmin bool              `bson:"superadmin" json:"superadmin"`

	// RolGlobal and RolesConsultorio are mutually exclusive; the usuarios
	// usecase rejects writes that would set both.
	RolGlobal        string                `bson:"rol_global,omitempty" json:"rol_global,omitempty"`
	RolesConsultorio []RolConsultorio      `bson:"roles_consultorio,omitempty" json:"roles_consultorio,omitempty"`

	ConsultorioContextoActual string `bson:"consultorio_contexto_actual,omitempty" json:"consultorio_contexto_actual,omitempty"`
	ConsultorioPrincipal      string `bson:"consultorio_principal,omitempty" json:"consultorio_principal,omitempty"`
	UltimoConsultorioActivo   string `bson:"ultimo_consultorio_activo,omitempty" json:"ultimo_consultorio_activo,omitempty"`
}

type RolConsultorio struct {
	ConsultorioID string `bson:"consultorio_id" json:"consultorio_id"`
	RolNombre     string `bson:"rol_nombre" json:"rol_nombre"`
}

// UserProfile is the payload the frontend works against. It is assembled
// wholesale on login/check and replaced as a unit, never patched in place.
type UserProfile struct {
	Usuario       PerfilUsuario        `json:"usuario"`
	EsSuperadmin  bool                 `json:"es_superadmin"`
	RolGlobal     *RolDescriptor       `json:"rol_global,omitempty"`
	RolActivo     string               `json:"rol_activo,omitempty"`
	PermisosLista []string             `json:"permisos_lista"`

	ConsultorioContextoActual string `json:"consultorio_contexto_actual,omitempty"`
	ConsultorioPrincipal      string `json:"consultorio_principal,omitempty"`
	UltimoConsultorioActivo   string `json:"ultimo_consultorio_activo,omitempty"`

	ConsultoriosUsuario []ConsultorioUsuario `json:"consultorios_usuario"`
	TodosConsultorios   []ConsultorioUsuario `json:"todos_consultorios,omitempty"`
	MenuModulos         []MenuModulo         `json:"menu_modulos"`
}

type PerfilUsuario struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

type RolDescriptor struct {
	Nombre string `json:"nombre"`
}

type ConsultorioUsuario struct {
	ConsultorioID string `json:"consultorio_id"`
	Nombre        string `json:"nombre"`
	Direccion     string `json:"direccion,omitempty"`
	RolNombre     string `json:"rol_nombre,omitempty"`
}

// ConsultorioActual resolves the business currently in scope:
// contexto actual, then principal, then last active. First non-empty wins.
func (p *UserProfile) ConsultorioActual() string {
	if p == nil {
		return ""
	}
	if p.ConsultorioContextoActual != "" {
		return p.ConsultorioContextoActual
	}
	if p.ConsultorioPrincipal != "" {
		return p.ConsultorioPrincipal
	}
	return p.UltimoConsultorioActivo
}

// RoleNames collects the user's role names: the global role when present,
// else the per-consultorio role names.
func (p *UserProfile) RoleNames() []string {
	if p == nil {
		return nil
	}
	if p.RolGlobal != nil && p.RolGlobal.Nombre != "" {
		return []string{p.RolGlobal.Nombre}
	}
	names := make([]string, 0, len(p.ConsultoriosUsuario))
	for _, c := range p.ConsultoriosUsuario {
		if c.RolNombre != "" {
			names = append(names, c.RolNombre)
		}
	}
	return names
}
