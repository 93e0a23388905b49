package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Horario is one weekly opening block for a consultorio. DiaSemana follows
// time.Weekday numbering (0 = Sunday).
type Horario struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ConsultorioID string             `bson:"consultorio_id" json:"consultorio_id"`
	DiaSemana     int                `bson:"dia_semana" json:"dia_semana"`
	Apertura      string             `bson:"apertura" json:"apertura"`
	Cierre        string             `bson:"cierre" json:"cierre"`
	SlotMinutos   int                `bson:"slot_minutos" json:"slot_minutos"`
}
