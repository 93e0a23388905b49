package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Consultorio struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Nombre    string             `bson:"nombre" json:"nombre"`
	Direccion string             `bson:"direccion" json:"direccion"`
	Telefono  string             `bson:"telefono,omitempty" json:"telefono,omitempty"`
	LogoURL   string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Activo    bool               `bson:"activo" json:"activo"`

	// WhatsApp Business link, populated by the vinculacion wizard.
	WhatsApp *WhatsAppVinculo `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

type WhatsAppVinculo struct {
	WabaID        string `bson:"waba_id" json:"waba_id"`
	PhoneNumberID string `bson:"phone_number_id" json:"phone_number_id"`
	Telefono      string `bson:"telefono" json:"telefono"`
	VinculadoPor  string `bson:"vinculado_por" json:"vinculado_por"`
}
