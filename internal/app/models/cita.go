package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CitaEstadoPendiente  = "PENDIENTE"
	CitaEstadoConfirmada = "CONFIRMADA"
	CitaEstadoAtendida   = "ATENDIDA"
	CitaEstadoCancelada  = "CANCELADA"
)

type Cita struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ConsultorioID string             `bson:"consultorio_id" json:"consultorio_id"`
	Paciente      string             `bson:"paciente" json:"paciente"`
	Telefono      string             `bson:"telefono,omitempty" json:"telefono,omitempty"`
	Motivo        string             `bson:"motivo,omitempty" json:"motivo,omitempty"`
	Estado        string             `bson:"estado" json:"estado"`
	Inicio        time.Time          `bson:"inicio" json:"inicio"`
	Fin           time.Time          `bson:"fin" json:"fin"`
	CreadaEn      time.Time          `bson:"creada_en" json:"creada_en"`
}
