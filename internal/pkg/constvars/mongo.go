package constvars

const (
	MongoCollectionUsuarios     = "usuarios"
	MongoCollectionRoles        = "roles"
	MongoCollectionConsultorios = "consultorios"
	MongoCollectionCitas        = "citas"
	MongoCollectionMetodosPago  = "metodos_pago"
	MongoCollectionHorarios     = "horarios"
	MongoCollectionModulos      = "menu_modulos"
)
