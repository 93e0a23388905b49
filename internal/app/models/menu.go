package models

// MenuModulo is a flat menu entry; ModuloPadreID forms an implicit two-level
// tree (nil = top level).
type MenuModulo struct {
	ModuloID      int    `bson:"modulo_id" json:"modulo_id"`
	Nombre        string `bson:"nombre" json:"nombre"`
	Icono         string `bson:"icono,omitempty" json:"icono,omitempty"`
	Ruta          string `bson:"ruta,omitempty" json:"ruta,omitempty"`
	Orden         int    `bson:"orden" json:"orden"`
	ModuloPadreID *int   `bson:"modulo_padre_id,omitempty" json:"modulo_padre_id,omitempty"`
}
