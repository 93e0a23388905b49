package constvars

// Permission strings follow the wire format "<MODULE>:<ACTION>", with the
// module token matched case-sensitively against menu module names.
const (
	PermissionSeparator = ":"

	ActionRead   = "READ"
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

const (
	ModuloCitas        = "CITAS"
	ModuloUsuarios     = "USUARIOS"
	ModuloConsultorios = "CONSULTORIOS"
	ModuloPagos        = "PAGOS"
	ModuloHorarios     = "HORARIOS"
	ModuloWhatsApp     = "WHATSAPP"
)
