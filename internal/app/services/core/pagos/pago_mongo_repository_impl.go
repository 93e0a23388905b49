package pagos

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PagoMongoRepository struct {
	Collection *mongo.Collection
}

func NewPagoMongoRepository(db *mongo.Client, dbName string) contracts.PagoRepository {
	return &PagoMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMetodosPago),
	}
}

func (r *PagoMongoRepository) UpsertMetodoPago(ctx context.Context, metodo *models.MetodoPago) error {
	filter := bson.M{
		"consultorio_id": metodo.ConsultorioID,
		"tipo":           metodo.Tipo,
	}
	update := bson.M{"$set": bson.M{
		"consultorio_id":  metodo.ConsultorioID,
		"tipo":            metodo.Tipo,
		"nombre_mostrado": metodo.NombreMostrado,
		"cuenta":          metodo.Cuenta,
		"habilitado":      metodo.Habilitado,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PagoMongoRepository) FindByConsultorio(ctx context.Context, consultorioID string) ([]models.MetodoPago, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"consultorio_id": consultorioID}, options.Find().SetSort(bson.D{{Key: "tipo", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	metodos := make([]models.MetodoPago, 0)
	if err := cursor.All(ctx, &metodos); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return metodos, nil
}

func (r *PagoMongoRepository) FindByConsultorioAndTipo(ctx context.Context, consultorioID, tipo string) (*models.MetodoPago, error) {
	var metodo models.MetodoPago
	err := r.Collection.FindOne(ctx, bson.M{"consultorio_id": consultorioID, "tipo": tipo}).Decode(&metodo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &metodo, nil
}

func (r *PagoMongoRepository) DeleteMetodoPago(ctx context.Context, consultorioID, tipo string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"consultorio_id": consultorioID, "tipo": tipo})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
