package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MetodoPago struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ConsultorioID  string             `bson:"consultorio_id" json:"consultorio_id"`
	Tipo           string             `bson:"tipo" json:"tipo"`
	NombreMostrado string             `bson:"nombre_mostrado" json:"nombre_mostrado"`
	Cuenta         string             `bson:"cuenta,omitempty" json:"cuenta,omitempty"`
	Habilitado     bool               `bson:"habilitado" json:"habilitado"`
}
