package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rol carries the permission strings granted to everyone holding it.
type Rol struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Nombre   string             `bson:"nombre" json:"nombre"`
	Permisos []string           `bson:"permisos" json:"permisos"`
}
